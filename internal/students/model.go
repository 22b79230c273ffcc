// Package students manages the student roster: the records themselves
// and the role-gated CRUD handlers over them.
package students

// Student is one roster row. All attributes except ID are free-form
// text, as captured from the forms.
type Student struct {
	ID            int64
	Matricule     string
	Nom           string
	Prenom        string
	DateNaissance string
	Filiere       string
	Universite    string
	Adresse       string
	Sexe          string
	Nationalite   string
}

// SexeCount is one row of the listing's grouped statistics.
type SexeCount struct {
	Sexe  string
	Count int64
}
