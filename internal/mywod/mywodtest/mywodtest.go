// Package mywodtest writes myWOD backup fixtures for tests.
package mywodtest

import (
	"alcyxob/wodbook/internal/mywod"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema mirrors the tables of a real myWOD backup, including a few
// columns the importer never reads.
const Schema = `
CREATE TABLE athlete (
	firstName TEXT, lastName TEXT, gender INTEGER, email TEXT, dob TEXT,
	height REAL, weight REAL, boxName TEXT, avatar BLOB, units INTEGER DEFAULT 0
);
CREATE TABLE custom_wods (
	clientID TEXT, recordID TEXT, title TEXT, description TEXT, scoreType TEXT,
	deleted INTEGER DEFAULT 0
);
CREATE TABLE movements (
	clientID TEXT, recordID TEXT, name TEXT, type INTEGER, favorite INTEGER DEFAULT 0
);
CREATE TABLE movement_sessions (
	clientID TEXT, recordID TEXT, foreignClientID TEXT, foreignRecordID TEXT,
	date TEXT, measurementAValue REAL, measurementB TEXT, sets TEXT, notes TEXT,
	measurementAUnits TEXT
);
CREATE TABLE wod_scores (
	title TEXT, date TEXT, scoreType TEXT, score TEXT, asPrescribed INTEGER,
	notes TEXT, description TEXT
);
`

// WriteBackup creates a backup file holding ds in a temp dir and returns its path.
func WriteBackup(t testing.TB, ds *mywod.Dataset) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.mywod")

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer conn.Close()

	exec := func(query string, args ...any) {
		t.Helper()
		if _, err := conn.Exec(query, args...); err != nil {
			t.Fatalf("fixture %q: %v", query, err)
		}
	}

	exec(Schema)
	if a := ds.Athlete; a != nil {
		exec(`INSERT INTO athlete (firstName, lastName, gender, email, dob, height, weight, boxName, avatar)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.FirstName, a.LastName, a.Gender, a.Email, a.DateOfBirth, a.Height, a.Weight, a.BoxName, a.Avatar)
	}
	for _, w := range ds.CustomWODs {
		exec(`INSERT INTO custom_wods (clientID, recordID, title, description, scoreType) VALUES (?, ?, ?, ?, ?)`,
			w.Key.ClientID, w.Key.RecordID, w.Title, w.Description, w.ScoreType)
	}
	for _, m := range ds.Movements {
		exec(`INSERT INTO movements (clientID, recordID, name, type) VALUES (?, ?, ?, ?)`,
			m.Key.ClientID, m.Key.RecordID, m.Name, m.Type)
	}
	for _, s := range ds.MovementSessions {
		exec(`INSERT INTO movement_sessions (clientID, recordID, foreignClientID, foreignRecordID,
			date, measurementAValue, measurementB, sets, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.Key.ClientID, s.Key.RecordID, s.MovementKey.ClientID, s.MovementKey.RecordID,
			s.Date, s.MeasurementAValue, s.MeasurementB, s.Sets, s.Notes)
	}
	for _, s := range ds.WODScores {
		rx := 0
		if s.AsPrescribed {
			rx = 1
		}
		exec(`INSERT INTO wod_scores (title, date, scoreType, score, asPrescribed, notes, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.Title, s.Date, s.ScoreType, s.Score, rx, s.Notes, s.Description)
	}
	return path
}

// SampleDataset is a small but complete backup: three custom WODs (one of
// them the vendor sample), two movements with sessions, and workout scores.
func SampleDataset(email string) *mywod.Dataset {
	squat := mywod.RecordKey{ClientID: "c1", RecordID: "10"}
	row := mywod.RecordKey{ClientID: "c1", RecordID: "11"}

	return &mywod.Dataset{
		Athlete: &mywod.Athlete{
			FirstName:   "Jane",
			LastName:    "Doe",
			Gender:      1,
			Email:       email,
			DateOfBirth: "1990-04-02",
			Height:      170,
			Weight:      65.5,
			BoxName:     "CrossFit Reykjavik",
		},
		CustomWODs: []mywod.CustomWOD{
			{Key: mywod.RecordKey{ClientID: "c1", RecordID: "1"}, Title: "Sample WOD",
				Description: SampleWODDescription, ScoreType: "For Time:"},
			{Key: mywod.RecordKey{ClientID: "c1", RecordID: "2"}, Title: "Death by Burpees",
				Description: "EMOM burpees, add one each minute", ScoreType: "For Rounds:"},
			{Key: mywod.RecordKey{ClientID: "c1", RecordID: "3"}, Title: "Long Row",
				Description: "Row 5k", ScoreType: " For Time: "},
		},
		Movements: []mywod.Movement{
			{Key: squat, Name: "Back Squat", Type: 0},
			{Key: row, Name: "Row 1000m", Type: 1},
		},
		MovementSessions: []mywod.MovementSession{
			{Key: mywod.RecordKey{ClientID: "c1", RecordID: "100"}, MovementKey: squat,
				Date: "2016-03-14 18:00:00", MeasurementAValue: 100, MeasurementB: "5", Sets: "3", Notes: "easy"},
			{Key: mywod.RecordKey{ClientID: "c1", RecordID: "101"}, MovementKey: row,
				Date: "2016-03-15", MeasurementAValue: 1000, MeasurementB: "3:30", Sets: "1"},
			{Key: mywod.RecordKey{ClientID: "c1", RecordID: "102"}, MovementKey: squat,
				Date: "2016-04-01", MeasurementAValue: 110, MeasurementB: "3", Sets: "5"},
			// Same record ID, other client: must not join with the squat.
			{Key: mywod.RecordKey{ClientID: "c2", RecordID: "103"},
				MovementKey: mywod.RecordKey{ClientID: "c2", RecordID: "10"},
				Date:        "2016-04-02", MeasurementAValue: 500, MeasurementB: "1", Sets: "1"},
		},
		WODScores: []mywod.WODScore{
			{Title: "Long Row", Date: "2016-05-01", ScoreType: "For Time:", Score: "21:05", AsPrescribed: true},
			{Title: "Death by Burpees", Date: "2016-05-02", ScoreType: "For Rounds:", Score: "14", Notes: "ouch"},
			{Title: "Fran", Date: "2016-05-03", ScoreType: "For Time:", Score: "4:12", AsPrescribed: true},
		},
	}
}

// SampleWODDescription is the text myWOD seeds its demo custom WOD with.
const SampleWODDescription = "This is a sample custom WOD. Tap the edit button to change it."
