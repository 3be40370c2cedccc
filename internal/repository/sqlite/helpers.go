package sqlite

import (
	"github.com/Masterminds/squirrel"
)

// Shared statement builder for the sqlite implementations.
var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
