package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching query literally anywhere in
// the column. Queries using it must declare ESCAPE '\'.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

const (
	appointmentSearchClause = `LOWER(client_name) LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\' OR LOWER(vehicle_model) LIKE ? ESCAPE '\'`
	clientSearchClause      = `LOWER(name) LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`
)
