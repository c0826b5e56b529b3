package ioload

// Statements of the load. Dimension rows that already exist are kept,
// except the user level which follows the latest event.
const (
	songInsert = `
		INSERT INTO songs (song_id, title, artist_id, year, duration)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (song_id) DO NOTHING`

	artistInsert = `
		INSERT INTO artists (artist_id, name, location, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (artist_id) DO NOTHING`

	timeInsert = `
		INSERT INTO time (start_time, hour, day, week, month, year, weekday)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (start_time) DO NOTHING`

	userInsert = `
		INSERT INTO users (user_id, first_name, last_name, gender, level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET level = EXCLUDED.level`

	songPlayInsert = `
		INSERT INTO songplays (start_time, user_id, level, song_id,
			artist_id, session_id, location, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// songSelect finds a catalog song by exact title, artist name
	// and duration. NULL arguments never match.
	songSelect = `
		SELECT s.song_id, a.artist_id
		FROM songs s
		JOIN artists a ON s.artist_id = a.artist_id
		WHERE s.title = $1 AND a.name = $2 AND s.duration = $3
		LIMIT 1`
)
