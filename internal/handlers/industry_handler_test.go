package handler_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestListIndustries(t *testing.T) {
	t.Run("aggregates linked company codes", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery(`SELECT \* FROM "industries"`).
			WillReturnRows(sqlmock.NewRows([]string{"code", "industry"}).
				AddRow("tech", "Technology").
				AddRow("ag", "Agriculture"))
		mock.ExpectQuery(`SELECT \* FROM "companies_industries"`).
			WillReturnRows(sqlmock.NewRows([]string{"company_code", "industry_code"}).
				AddRow("yahoo", "tech"))
		mock.ExpectQuery(`SELECT \* FROM "companies"`).
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "description"}).
				AddRow("yahoo", "Yahoo", "Kinda dead."))

		w := perform(r, http.MethodGet, "/industries", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"industries":[
			{"code":"tech","industry":"Technology","companies":["yahoo"]},
			{"code":"ag","industry":"Agriculture","companies":[]}]}`,
			w.Body.String())
	})
}

func TestCreateIndustry(t *testing.T) {
	t.Run("creates an industry", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "industries"`).
			WithArgs("tech", "Technology").
			WillReturnResult(sqlmock.NewResult(1, 1))

		w := perform(r, http.MethodPost, "/industries", `{"code":"tech","industry":"Technology"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"industry":{"code":"tech","industry":"Technology"}}`, w.Body.String())
	})

	t.Run("409 on duplicate code", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "industries"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		w := perform(r, http.MethodPost, "/industries", `{"code":"tech","industry":"Technology"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		r, _, mockDB := newTestRouter(t)
		defer mockDB.Close()

		w := perform(r, http.MethodPost, "/industries", `{"code":"tech"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJoinCompanyIndustry(t *testing.T) {
	t.Run("links a company and an industry", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "code" FROM "companies" WHERE code = \$1`).
			WithArgs("yahoo", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("yahoo"))
		mock.ExpectQuery(`SELECT "code" FROM "industries" WHERE code = \$1`).
			WithArgs("tech", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("tech"))
		mock.ExpectExec(`INSERT INTO "companies_industries"`).
			WithArgs("yahoo", "tech").
			WillReturnResult(sqlmock.NewResult(1, 1))

		w := perform(r, http.MethodPost, "/industries/join",
			`{"company_code":"yahoo","industry_code":"tech"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"joined":{"company_code":"yahoo","industry_code":"tech"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("404 when the company does not exist", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "code" FROM "companies" WHERE code = \$1`).
			WithArgs("nope", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}))

		w := perform(r, http.MethodPost, "/industries/join",
			`{"company_code":"nope","industry_code":"tech"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("404 when the industry does not exist", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "code" FROM "companies" WHERE code = \$1`).
			WithArgs("yahoo", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("yahoo"))
		mock.ExpectQuery(`SELECT "code" FROM "industries" WHERE code = \$1`).
			WithArgs("nope", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}))

		w := perform(r, http.MethodPost, "/industries/join",
			`{"company_code":"yahoo","industry_code":"nope"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("409 when already joined", func(t *testing.T) {
		r, mock, mockDB := newTestRouter(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "code" FROM "companies" WHERE code = \$1`).
			WithArgs("yahoo", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("yahoo"))
		mock.ExpectQuery(`SELECT "code" FROM "industries" WHERE code = \$1`).
			WithArgs("tech", 1).
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("tech"))
		mock.ExpectExec(`INSERT INTO "companies_industries"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		w := perform(r, http.MethodPost, "/industries/join",
			`{"company_code":"yahoo","industry_code":"tech"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
