// Package store persists directed projects and their dialogue riggings in
// SQLite. Entities are stored as JSON bodies next to the columns they are
// queried by.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivlev/directorkit/internal/model"
)

var ErrNotFound = errors.New("not found")

// ProjectSummary is a listing row; it does not load the project body.
type ProjectSummary struct {
	ID            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	Status        model.ProjectStatus `json:"status"`
	TotalDuration float64             `json:"totalDuration"`
	SceneCount    int                 `json:"sceneCount"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// StoredRigging is a rigging with the project and scene it was planned in.
type StoredRigging struct {
	ProjectID   uuid.UUID             `json:"projectId"`
	SceneNumber int                   `json:"sceneNumber"`
	Rigging     model.DialogueRigging `json:"rigging"`
}

// SQLiteStore is the project repository.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*SQLiteStore, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveProject stores the project and replaces its riggings with the ones of
// its scenes.
func (s *SQLiteStore) SaveProject(ctx context.Context, p *model.DirectorProject) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (id, title, status, total_duration, scene_count, body, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			status = excluded.status,
			total_duration = excluded.total_duration,
			scene_count = excluded.scene_count,
			body = excluded.body,
			updated_at = excluded.updated_at`,
		p.ID.String(), p.Title, string(p.Status), p.TotalDuration, len(p.Scenes), string(body), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save project %s: %w", p.Title, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM riggings WHERE project_id = ?`, p.ID.String()); err != nil {
		return err
	}
	for _, scene := range p.Scenes {
		if err := insertRiggings(ctx, tx, p.ID, scene.SceneNumber, scene.Riggings); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Debug("Saved project", "id", p.ID, "title", p.Title, "scenes", len(p.Scenes))
	return nil
}

// SaveRiggings replaces the riggings of one scene of a stored project.
func (s *SQLiteStore) SaveRiggings(ctx context.Context, projectID uuid.UUID, sceneNumber int, riggings []model.DialogueRigging) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM riggings WHERE project_id = ? AND scene_number = ?`, projectID.String(), sceneNumber); err != nil {
		return err
	}
	if err := insertRiggings(ctx, tx, projectID, sceneNumber, riggings); err != nil {
		return err
	}
	return tx.Commit()
}

func insertRiggings(ctx context.Context, tx *sql.Tx, projectID uuid.UUID, sceneNumber int, riggings []model.DialogueRigging) error {
	for i, r := range riggings {
		body, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode rigging: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO riggings (id, project_id, scene_number, position, speaker, body) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID.String(), projectID.String(), sceneNumber, i, characterKey(r.Dialogue.Character), string(body))
		if err != nil {
			return fmt.Errorf("save rigging for %s in scene %d: %w", r.Dialogue.Character, sceneNumber, err)
		}
	}
	return nil
}

func characterKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// GetProject loads a project, returning ErrNotFound when it does not exist.
func (s *SQLiteStore) GetProject(ctx context.Context, id uuid.UUID) (*model.DirectorProject, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM projects WHERE id = ?`, id.String()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var p model.DirectorProject
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", id, err)
	}
	return &p, nil
}

// ListProjects returns every project, most recently saved first.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, status, total_duration, scene_count, updated_at FROM projects ORDER BY updated_at DESC, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProjectSummary
	for rows.Next() {
		var (
			ps     ProjectSummary
			id     string
			status string
		)
		if err := rows.Scan(&id, &ps.Title, &status, &ps.TotalDuration, &ps.SceneCount, &ps.UpdatedAt); err != nil {
			return nil, err
		}
		if ps.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("project id %q: %w", id, err)
		}
		ps.Status = model.ProjectStatus(status)
		out = append(out, ps)
	}
	return out, rows.Err()
}

// DeleteProject removes a project and its riggings.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM riggings WHERE project_id = ?`, id.String()); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return tx.Commit()
}

// RiggingsForCharacter returns every stored rigging of a character across
// projects, ordered by project, scene and line. The name is matched without
// regard to case.
func (s *SQLiteStore) RiggingsForCharacter(ctx context.Context, name string) ([]StoredRigging, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, scene_number, body FROM riggings WHERE speaker = ? ORDER BY project_id, scene_number, position`,
		characterKey(name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredRigging
	for rows.Next() {
		var (
			sr        StoredRigging
			projectID string
			body      string
		)
		if err := rows.Scan(&projectID, &sr.SceneNumber, &body); err != nil {
			return nil, err
		}
		if sr.ProjectID, err = uuid.Parse(projectID); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(body), &sr.Rigging); err != nil {
			return nil, fmt.Errorf("decode rigging: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
