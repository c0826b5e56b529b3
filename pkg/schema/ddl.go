package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Song DDL methods
func (s Song) TableDDL() string {
	return generateDDL(s, s.TableName())
}

func (s Song) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_songs_title ON songs(title);",
		"CREATE INDEX idx_songs_artist_id ON songs(artist_id);",
	}
}

func (s Song) TableName() string {
	return "songs"
}

// Artist DDL methods
func (a Artist) TableDDL() string {
	return generateDDL(a, a.TableName())
}

func (a Artist) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_artists_name ON artists(name);",
	}
}

func (a Artist) TableName() string {
	return "artists"
}

// User DDL methods
func (u User) TableDDL() string {
	return generateDDL(u, u.TableName())
}

func (u User) IndexDDL() []string {
	return []string{}
}

func (u User) TableName() string {
	return "users"
}

// Time DDL methods
func (t Time) TableDDL() string {
	return generateDDL(t, t.TableName())
}

func (t Time) IndexDDL() []string {
	return []string{}
}

func (t Time) TableName() string {
	return "time"
}

// SongPlay DDL methods
func (sp SongPlay) TableDDL() string {
	return generateDDL(sp, sp.TableName())
}

func (sp SongPlay) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_songplays_start_time ON songplays(start_time);",
		"CREATE INDEX idx_songplays_user_id ON songplays(user_id);",
	}
}

func (sp SongPlay) TableName() string {
	return "songplays"
}

// DDL returns the CREATE TABLE and CREATE INDEX statements of the
// whole schema in creation order.
func DDL() []string {
	var res []string
	for _, m := range AllModels() {
		gen, ok := m.(DDLGenerator)
		if !ok {
			continue
		}
		res = append(res, gen.TableDDL())
		res = append(res, gen.IndexDDL()...)
	}
	return res
}
