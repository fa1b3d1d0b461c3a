package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

func TestLogin_ParsesEnvelopeAndRetainsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "admin@example.com", r.FormValue("email"))
		assert.Equal(t, "secret", r.FormValue("password"))

		w.Write([]byte(`{"status":true,"data":{"token":"tok-123","user":{"id":1,"name":"Admin","email":"admin@example.com","usertype":"admin"}}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	token, user, err := c.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "admin", user.UserType)
	assert.Equal(t, "tok-123", c.bearer())
}

func TestLogin_RejectedCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, _, err := c.Login(context.Background(), "x@example.com", "nope")
	re, ok := IsRejected(err)
	require.True(t, ok)
	assert.Equal(t, "invalid credentials", re.Message)
}

func TestListCategories_MapsWireEncodings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "/categories", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":[{"id":1,"name":"Electronics","status":1},{"id":2,"name":"Books","status":0}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, models.Category{ID: "1", Name: "Electronics", Status: models.StatusActive}, cats[0])
	assert.Equal(t, models.Category{ID: "2", Name: "Books", Status: models.StatusInactive}, cats[1])
}

func TestMissingToken_FailsLocally(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	_, err := c.ListCategories(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	err = c.CreateCategory(context.Background(), models.Category{Name: "Toys"})
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, int32(0), hits.Load(), "no round-trip without a credential")
}

func TestUpdateCategory_SimulatesPutOverPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/categories/7", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "PUT", r.FormValue("_method"))
		assert.Equal(t, "Toys", r.FormValue("name"))
		assert.Equal(t, "0", r.FormValue("status"))

		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")

	err := c.UpdateCategory(context.Background(), models.Category{ID: "7", Name: "Toys", Status: models.StatusInactive})
	require.NoError(t, err)
}

func TestDeleteProduct_SendsMethodOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/items/101", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "DELETE", r.FormValue("_method"))
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")
	require.NoError(t, c.DeleteProduct(context.Background(), "101"))
}

func TestUpdateEmployee_PasswordOnlyWhenSet(t *testing.T) {
	var sawPassword bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, sawPassword = r.MultipartForm.Value["password"]
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")

	e := models.Employee{ID: "5", Name: "Jo", Email: "jo@example.com", Mobile: "123", Salary: 1200, Status: models.StatusActive}
	require.NoError(t, c.UpdateEmployee(context.Background(), e))
	assert.False(t, sawPassword, "empty password means leave unchanged")

	e.Password = "new-secret"
	require.NoError(t, c.UpdateEmployee(context.Background(), e))
	assert.True(t, sawPassword)
}

func TestListSalaries_ScopedToEmployee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/employee-salaries/"))
		switch r.URL.Path {
		case "/employee-salaries/5":
			w.Write([]byte(`{"status":true,"data":[{"id":1,"employee_id":5,"sal_date":"2026-08-01","advance":100,"others":-20,"netamount":1080,"note":"aug"}]}`))
		default:
			w.Write([]byte(`{"status":true,"data":[]}`))
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")

	recs, err := c.ListSalaries(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "5", recs[0].EmployeeID)
	assert.Equal(t, 100.0, recs[0].Advance)
	assert.Equal(t, -20.0, recs[0].Others)
	assert.Equal(t, 1080.0, recs[0].NetAmount)

	recs, err = c.ListSalaries(context.Background(), "6")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSetToken_SafeDuringInFlightCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		require.True(t, auth == "Bearer tok-a" || auth == "Bearer tok-b", "got %q", auth)
		w.Write([]byte(`{"status":true,"data":[]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok-a")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListCategories(context.Background())
			assert.NoError(t, err)
		}()
	}
	c.SetToken("tok-b")
	wg.Wait()

	assert.Equal(t, "tok-b", c.bearer())
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")

	_, err := c.ListEmployees(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
