package query

import "github.com/pkg/errors"

var (
	// ErrInsertSourceConflict indicates an Insert carrying both Values and a Select.
	ErrInsertSourceConflict = errors.New("cannot specify both values and select for insert")
	// ErrInsertSourceMissing indicates an Insert carrying neither Values nor a Select.
	ErrInsertSourceMissing = errors.New("no values or select specified for insert")
	// ErrDuplicateKey indicates a keyed collection already holds the key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMissingTable indicates a statement without a target table.
	ErrMissingTable = errors.New("no target table specified")
	// ErrEmptySet indicates an Update without any SET entry.
	ErrEmptySet = errors.New("no columns set for update")
	// ErrInvalidConditionValue indicates a search condition whose value does
	// not fit its operator, e.g. BETWEEN with other than two values.
	ErrInvalidConditionValue = errors.New("invalid search condition value")
	// ErrUnsupported indicates a clause the configured dialect or version cannot express.
	ErrUnsupported = errors.New("unsupported by dialect")
)

// ErrNilStatement indicates a build of a nil statement.
var ErrNilStatement = errors.New("nil statement")
