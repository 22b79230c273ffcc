package students

import (
	"context"
	"database/sql"
	"errors"

	"gestion-etudiants/internal/db"
)

var ErrNotFound = errors.New("student not found")

// Store persists student records. The database-backed implementation
// is the canonical one; tests substitute in-memory fakes.
type Store interface {
	// List returns all students ordered by id descending.
	List(ctx context.Context) ([]Student, error)
	// CountBySexe returns record counts grouped by the sexe attribute.
	CountBySexe(ctx context.Context) ([]SexeCount, error)
	GetByID(ctx context.Context, id int64) (*Student, error)
	Create(ctx context.Context, st Student) (int64, error)
	// Update replaces the full row for the given id. Updating a
	// missing id is a no-op, not an error.
	Update(ctx context.Context, st Student) error
	// Delete removes the row. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}

type SQLStore struct {
	db *db.DB
}

func NewSQLStore(db *db.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, matricule, nom, prenom, date_naissance,
		       filiere, universite, adresse, sexe, nationalite
		FROM etudiants
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(
			&st.ID, &st.Matricule, &st.Nom, &st.Prenom, &st.DateNaissance,
			&st.Filiere, &st.Universite, &st.Adresse, &st.Sexe, &st.Nationalite,
		); err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, rows.Err()
}

func (s *SQLStore) CountBySexe(ctx context.Context) ([]SexeCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sexe, COUNT(*) AS count
		FROM etudiants
		GROUP BY sexe
		ORDER BY sexe
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SexeCount
	for rows.Next() {
		var sc SexeCount
		if err := rows.Scan(&sc.Sexe, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}

	return out, rows.Err()
}

func (s *SQLStore) GetByID(ctx context.Context, id int64) (*Student, error) {
	var st Student

	err := s.db.QueryRowContext(ctx, `
		SELECT id, matricule, nom, prenom, date_naissance,
		       filiere, universite, adresse, sexe, nationalite
		FROM etudiants
		WHERE id = $1
	`, id).Scan(
		&st.ID, &st.Matricule, &st.Nom, &st.Prenom, &st.DateNaissance,
		&st.Filiere, &st.Universite, &st.Adresse, &st.Sexe, &st.Nationalite,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &st, nil
}

func (s *SQLStore) Create(ctx context.Context, st Student) (int64, error) {
	var id int64

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO etudiants (matricule, nom, prenom, date_naissance,
		                       filiere, universite, adresse, sexe, nationalite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		st.Matricule, st.Nom, st.Prenom, st.DateNaissance,
		st.Filiere, st.Universite, st.Adresse, st.Sexe, st.Nationalite,
	).Scan(&id)

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *SQLStore) Update(ctx context.Context, st Student) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE etudiants
		SET matricule = $1, nom = $2, prenom = $3, date_naissance = $4,
		    filiere = $5, universite = $6, adresse = $7, sexe = $8,
		    nationalite = $9
		WHERE id = $10
	`,
		st.Matricule, st.Nom, st.Prenom, st.DateNaissance,
		st.Filiere, st.Universite, st.Adresse, st.Sexe, st.Nationalite,
		st.ID,
	)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM etudiants WHERE id = $1
	`, id)
	return err
}
