package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"automation_snooze/internal/models"
	"automation_snooze/internal/repository"
)

func TestEventSQLite_Append_FillsIDAndTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewEventSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snooze_events")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "PAUSE", "automation.porch", "Automation paused", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Append(context.Background(), models.SnoozeEvent{
		Type:        "pause", // normalized to upper case
		EntityID:    "automation.porch",
		Description: "Automation paused",
		Metadata:    map[string]any{"minutes": 150},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEventSQLite_List_FiltersAndUnmarshalsMeta(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewEventSQLite(db)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	occurred := from.Add(2 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "occurred_at", "type", "entity_id", "message", "meta"}).
		AddRow("e1", occurred, "PAUSE", "automation.porch", "Automation paused", `{"minutes":150}`)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, occurred_at, type, entity_id, message, meta FROM snooze_events WHERE occurred_at >= ? AND type = ? ORDER BY occurred_at ASC")).
		WithArgs(from, "PAUSE").
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), from, time.Time{}, "pause")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d", len(events))
	}
	ev := events[0]
	if ev.EntityID != "automation.porch" || ev.Type != "PAUSE" {
		t.Fatalf("event = %+v", ev)
	}
	meta, ok := ev.Metadata.(map[string]any)
	if !ok || meta["minutes"] != float64(150) {
		t.Fatalf("metadata = %#v", ev.Metadata)
	}
}
