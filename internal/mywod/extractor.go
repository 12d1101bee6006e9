package mywod

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"

	_ "modernc.org/sqlite"
)

// ErrInvalidFile means the backup cannot be opened or lacks the expected tables.
var ErrInvalidFile = errors.New("invalid myWOD backup file")

const (
	athleteQuery = `SELECT firstName, lastName, gender, email, dob, height, weight, boxName, avatar
		FROM athlete LIMIT 1`
	customWODsQuery = `SELECT clientID, recordID, title, description, scoreType
		FROM custom_wods`
	movementsQuery = `SELECT clientID, recordID, name, type
		FROM movements`
	movementSessionsQuery = `SELECT clientID, recordID, foreignClientID, foreignRecordID,
		date, measurementAValue, measurementB, sets, notes
		FROM movement_sessions`
	wodScoresQuery = `SELECT title, date, scoreType, score, asPrescribed, notes, description
		FROM wod_scores`
)

// backupDSN escapes path into a file: URI so '?' and '#' in the name are not
// taken as the start of the query string.
func backupDSN(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?_pragma=query_only(1)"
}

// Extractor reads myWOD backups from disk.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract opens the backup at path read-only and loads all five record sets.
// Any failure is reported as ErrInvalidFile: the file as a whole is unusable.
func (e *Extractor) Extract(ctx context.Context, path string) (*Dataset, error) {
	// sqlite creates missing files on open, so check first.
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFile, path)
	}

	conn, err := sql.Open("sqlite", backupDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrInvalidFile, err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: ping sqlite: %v", ErrInvalidFile, err)
	}

	ds := &Dataset{}
	if ds.Athlete, err = readAthlete(ctx, conn); err != nil {
		return nil, fmt.Errorf("%w: athlete: %v", ErrInvalidFile, err)
	}
	if ds.CustomWODs, err = readCustomWODs(ctx, conn); err != nil {
		return nil, fmt.Errorf("%w: custom wods: %v", ErrInvalidFile, err)
	}
	if ds.Movements, err = readMovements(ctx, conn); err != nil {
		return nil, fmt.Errorf("%w: movements: %v", ErrInvalidFile, err)
	}
	if ds.MovementSessions, err = readMovementSessions(ctx, conn); err != nil {
		return nil, fmt.Errorf("%w: movement sessions: %v", ErrInvalidFile, err)
	}
	if ds.WODScores, err = readWODScores(ctx, conn); err != nil {
		return nil, fmt.Errorf("%w: wod scores: %v", ErrInvalidFile, err)
	}
	return ds, nil
}

func readAthlete(ctx context.Context, conn *sql.DB) (*Athlete, error) {
	var (
		first, last, email, dob, box sql.NullString
		gender                       sql.NullInt64
		height, weight               sql.NullFloat64
		avatar                       []byte
	)
	err := conn.QueryRowContext(ctx, athleteQuery).Scan(&first, &last, &gender, &email, &dob, &height, &weight, &box, &avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Athlete{
		FirstName:   first.String,
		LastName:    last.String,
		Gender:      int(gender.Int64),
		Email:       email.String,
		DateOfBirth: dob.String,
		Height:      height.Float64,
		Weight:      weight.Float64,
		BoxName:     box.String,
		Avatar:      avatar,
	}, nil
}

func readCustomWODs(ctx context.Context, conn *sql.DB) ([]CustomWOD, error) {
	rows, err := conn.QueryContext(ctx, customWODsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomWOD
	for rows.Next() {
		var clientID, recordID, title, description, scoreType sql.NullString
		if err := rows.Scan(&clientID, &recordID, &title, &description, &scoreType); err != nil {
			return nil, err
		}
		out = append(out, CustomWOD{
			Key:         RecordKey{ClientID: clientID.String, RecordID: recordID.String},
			Title:       title.String,
			Description: description.String,
			ScoreType:   scoreType.String,
		})
	}
	return out, rows.Err()
}

func readMovements(ctx context.Context, conn *sql.DB) ([]Movement, error) {
	rows, err := conn.QueryContext(ctx, movementsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Movement
	for rows.Next() {
		var clientID, recordID, name sql.NullString
		var typ sql.NullInt64
		if err := rows.Scan(&clientID, &recordID, &name, &typ); err != nil {
			return nil, err
		}
		out = append(out, Movement{
			Key:  RecordKey{ClientID: clientID.String, RecordID: recordID.String},
			Name: name.String,
			Type: int(typ.Int64),
		})
	}
	return out, rows.Err()
}

func readMovementSessions(ctx context.Context, conn *sql.DB) ([]MovementSession, error) {
	rows, err := conn.QueryContext(ctx, movementSessionsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MovementSession
	for rows.Next() {
		var (
			clientID, recordID, foreignClientID, foreignRecordID sql.NullString
			date, measurementB, sets, notes                      sql.NullString
			measurementA                                         sql.NullFloat64
		)
		if err := rows.Scan(&clientID, &recordID, &foreignClientID, &foreignRecordID,
			&date, &measurementA, &measurementB, &sets, &notes); err != nil {
			return nil, err
		}
		out = append(out, MovementSession{
			Key:               RecordKey{ClientID: clientID.String, RecordID: recordID.String},
			MovementKey:       RecordKey{ClientID: foreignClientID.String, RecordID: foreignRecordID.String},
			Date:              date.String,
			MeasurementAValue: measurementA.Float64,
			MeasurementB:      measurementB.String,
			Sets:              sets.String,
			Notes:             notes.String,
		})
	}
	return out, rows.Err()
}

func readWODScores(ctx context.Context, conn *sql.DB) ([]WODScore, error) {
	rows, err := conn.QueryContext(ctx, wodScoresQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WODScore
	for rows.Next() {
		var title, date, scoreType, score, notes, description sql.NullString
		var rx sql.NullInt64
		if err := rows.Scan(&title, &date, &scoreType, &score, &rx, &notes, &description); err != nil {
			return nil, err
		}
		out = append(out, WODScore{
			Title:        title.String,
			Date:         date.String,
			ScoreType:    scoreType.String,
			Score:        score.String,
			AsPrescribed: rx.Int64 != 0,
			Notes:        notes.String,
			Description:  description.String,
		})
	}
	return out, rows.Err()
}
