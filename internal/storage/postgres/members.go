package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/weiminglau/family-tree-be/internal/models"
	"github.com/weiminglau/family-tree-be/internal/storage"
)

const memberColumns = `id, user_id, name, date_of_birth, gender, photo_url, bio, created_at`

// CreateMember inserts a row and returns it as stored, so the generated id
// and null defaults reflect the database exactly.
func (s *Store) CreateMember(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	query := fmt.Sprintf(`
		INSERT INTO family_members (user_id, name, date_of_birth, gender, photo_url, bio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s;`, memberColumns)
	row := s.pool.QueryRow(ctx, query,
		member.UserID, member.Name, dateArg(member.DateOfBirth),
		textArg(member.Gender), textArg(member.PhotoURL), textArg(member.Bio),
	)
	return scanMember(row)
}

// ListMembers returns every member owned by ownerID in insertion order.
func (s *Store) ListMembers(ctx context.Context, ownerID int64) ([]models.FamilyMember, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM family_members
		WHERE user_id = $1
		ORDER BY id;`, memberColumns)
	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.FamilyMember{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// GetMember fetches a single member scoped to its owner.
func (s *Store) GetMember(ctx context.Context, ownerID, memberID int64) (models.FamilyMember, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM family_members
		WHERE id = $1 AND user_id = $2;`, memberColumns)
	return scanMember(s.pool.QueryRow(ctx, query, memberID, ownerID))
}

// UpdateMember applies a partial update and returns the full row as stored
// afterwards. The SET list is built from exactly the populated patch slots;
// a pointer to an empty value clears its column to null.
func (s *Store) UpdateMember(ctx context.Context, ownerID, memberID int64, patch models.MemberPatch) (models.FamilyMember, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 7)
	assign := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		assign("name", *patch.Name)
	}
	if patch.DateOfBirth != nil {
		if patch.DateOfBirth.IsZero() {
			assign("date_of_birth", nil)
		} else {
			assign("date_of_birth", patch.DateOfBirth.Time)
		}
	}
	if patch.Gender != nil {
		assign("gender", nullable(*patch.Gender))
	}
	if patch.PhotoURL != nil {
		assign("photo_url", nullable(*patch.PhotoURL))
	}
	if patch.Bio != nil {
		assign("bio", nullable(*patch.Bio))
	}

	if len(set) == 0 {
		return models.FamilyMember{}, errors.New("empty patch")
	}

	args = append(args, memberID, ownerID)
	query := fmt.Sprintf(`
		UPDATE family_members SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s;`, strings.Join(set, ", "), len(args)-1, len(args), memberColumns)
	return scanMember(s.pool.QueryRow(ctx, query, args...))
}

// DeleteMember removes a member scoped to its owner. Matching zero rows is
// reported as storage.ErrNotFound.
func (s *Store) DeleteMember(ctx context.Context, ownerID, memberID int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM family_members WHERE id = $1 AND user_id = $2;`,
		memberID, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (models.FamilyMember, error) {
	var member models.FamilyMember
	var dob sql.NullTime
	var gender, photoURL, bio sql.NullString
	err := row.Scan(
		&member.ID, &member.UserID, &member.Name,
		&dob, &gender, &photoURL, &bio, &member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.FamilyMember{}, storage.ErrNotFound
		}
		return models.FamilyMember{}, err
	}
	if dob.Valid {
		date := models.Date{Time: dob.Time}
		member.DateOfBirth = &date
	}
	member.Gender = textPtr(gender)
	member.PhotoURL = textPtr(photoURL)
	member.Bio = textPtr(bio)
	return member, nil
}

func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func textArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func textPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	value := ns.String
	return &value
}
