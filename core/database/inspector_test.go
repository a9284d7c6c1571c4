package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInspectorDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:inspector?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`CREATE TABLE IF NOT EXISTS survey_cases (
		id INTEGER PRIMARY KEY,
		case_id VARCHAR(64),
		service_code VARCHAR(64),
		customer_name VARCHAR(255),
		sync_status VARCHAR(20)
	)`).Error
	require.NoError(t, err)

	return db
}

func TestGetTableColumns_SQLite(t *testing.T) {
	db := setupInspectorDB(t)

	columns, err := GetTableColumns(db, "survey_cases")
	require.NoError(t, err)

	fields := make([]string, 0, len(columns))
	for _, col := range columns {
		fields = append(fields, col.Field)
	}

	assert.Contains(t, fields, "case_id")
	assert.Contains(t, fields, "service_code")
	assert.Contains(t, fields, "sync_status")
}

func setupMockMySQL(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGetTableColumns_MySQL(t *testing.T) {
	db, mock := setupMockMySQL(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "INT(11)", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("Case_ID", "VARCHAR(64)", "YES", "UNI", nil, "")
	rows.AddRow("budget", "DECIMAL(20,4)", "YES", "", "0", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `survey_cases`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "survey_cases")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Field and type names come back lowercased regardless of the server's casing.
	assert.Equal(t, "case_id", columns[1].Field)
	assert.Equal(t, "varchar(64)", columns[1].Type)
	assert.Equal(t, "decimal(20,4)", columns[2].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyColumns_MySQL(t *testing.T) {
	db, mock := setupMockMySQL(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("sequence_no", "varchar(32)", "NO", "UNI", nil, "")
	rows.AddRow("case_id", "varchar(64)", "YES", "MUL", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `contract_summaries`").WillReturnRows(rows)

	missing, err := VerifyColumns(db, "contract_summaries", []string{"sequence_no", "case_id", "contract_value"})
	require.NoError(t, err)
	assert.Equal(t, []string{"contract_value"}, missing)
}

func TestVerifyColumns(t *testing.T) {
	db := setupInspectorDB(t)

	t.Run("All Present", func(t *testing.T) {
		missing, err := VerifyColumns(db, "survey_cases", []string{"case_id", "customer_name"})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Missing Columns Reported", func(t *testing.T) {
		missing, err := VerifyColumns(db, "survey_cases", []string{"case_id", "budget", "go_live_date"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"budget", "go_live_date"}, missing)
	})
}
