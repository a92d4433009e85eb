package hotelpager

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// tQuoted matches a table or column name quoted by either dialect.
const tQuoted = "[`'\"]%s[`'\"]"

type tDialectMock struct {
	name string
	db   *gorm.DB
	mock sqlmock.Sqlmock
}

// newDialectMocks opens one sqlmock-backed gorm connection per supported
// dialect.
func newDialectMocks(t *testing.T) []tDialectMock {
	t.Helper()

	openers := []struct {
		name string
		open func(conn gorm.ConnPool) gorm.Dialector
	}{
		{"mysql", func(conn gorm.ConnPool) gorm.Dialector {
			return mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true})
		}},
		{"postgres", func(conn gorm.ConnPool) gorm.Dialector {
			return postgres.New(postgres.Config{Conn: conn})
		}},
	}

	ret := make([]tDialectMock, 0, len(openers))
	for _, o := range openers {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)

		db, err := gorm.Open(o.open(mockDB), &gorm.Config{})
		require.NoError(t, err, "gorm open %s", o.name)

		ret = append(ret, tDialectMock{name: o.name, db: db.Debug(), mock: mock})
	}

	return ret
}
