package db

import (
	"context"
)

const rosterMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS accounts (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    username text NOT NULL,
    password_hash text NOT NULL,
    role text NOT NULL DEFAULT 'user',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS accounts_username_unique
ON accounts (username);

CREATE TABLE IF NOT EXISTS etudiants (
    id bigserial PRIMARY KEY,
    matricule text NOT NULL DEFAULT '',
    nom text NOT NULL DEFAULT '',
    prenom text NOT NULL DEFAULT '',
    date_naissance text NOT NULL DEFAULT '',
    filiere text NOT NULL DEFAULT '',
    universite text NOT NULL DEFAULT '',
    adresse text NOT NULL DEFAULT '',
    sexe text NOT NULL DEFAULT '',
    nationalite text NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS etudiants_sexe_idx
ON etudiants (sexe);
`

func RunMigration(ctx context.Context, d *DB) error {
	_, err := d.ExecContext(ctx, rosterMigration)
	return err
}
