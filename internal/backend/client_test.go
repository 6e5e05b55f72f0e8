package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexatech/nexatech-web/internal/backend/backendtest"
	"github.com/nexatech/nexatech-web/internal/content/domain"
)

func TestClient_LoginAndCurrentUser(t *testing.T) {
	fake := backendtest.New(t)
	c := NewClient(fake.URL, 5*time.Second)
	ctx := context.Background()

	res, err := c.Login(ctx, backendtest.AdminEmail, backendtest.AdminPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, backendtest.AdminEmail, res.User.Email)

	u, err := c.CurrentUser(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, backendtest.AdminUsername, u.Username)
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	fake := backendtest.New(t)
	c := NewClient(fake.URL, 5*time.Second)

	_, err := c.Login(context.Background(), backendtest.AdminEmail, "nope")
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusUnauthorized, re.Status)
	assert.Equal(t, "Invalid credentials", UserMessage(err))
	assert.True(t, IsUnauthorized(err))
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"services":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Services(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/json", gotType)

	_, err = c.PublicServices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.DeleteService(context.Background(), "tok", "x")
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Request failed", re.Message)
	assert.False(t, IsUnauthorized(err))

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Calls)
	assert.Equal(t, int64(1), m.Errors)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.PublicPortfolio(context.Background())
	require.Error(t, err)
	var re *RequestError
	assert.False(t, errors.As(err, &re))
	assert.Equal(t, "Unable to reach the server. Please try again.", UserMessage(err))
}

func TestClient_ListSkipsUndecodableRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"portfolio":[
			{"id":"shop","title":"Shop","category":"Web Development","status":"Live","color":"blue"},
			{"id":"bad","title":"Bad","category":"Web Development","status":"Live","color":"orange"},
			{"id":"app","title":"App","category":"Mobile App","status":"Completed","color":"pink"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	list, err := c.PublicPortfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "shop", list[0].ID)
	assert.Equal(t, "app", list[1].ID)
}

func TestClient_DecodeFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":{"id":"web","color":"orange"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.PublicService(context.Background(), "web")
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.ErrorIs(t, err, domain.ErrInvalidColor)
	assert.Equal(t, "The server sent an invalid response. Please try again.", UserMessage(err))
}

func TestClient_ServiceCRUD(t *testing.T) {
	fake := backendtest.New(t)
	c := NewClient(fake.URL, 5*time.Second)
	ctx := context.Background()
	tok := fake.IssueToken()

	svc := domain.Service{
		ID:       "web",
		Title:    "Web",
		Color:    domain.ColorTeal,
		Features: []string{"a", "b"},
	}
	require.NoError(t, c.CreateService(ctx, tok, svc))

	got, err := c.Service(ctx, tok, "web")
	require.NoError(t, err)
	assert.Equal(t, svc.Title, got.Title)
	assert.Equal(t, svc.Features, got.Features)
	assert.Equal(t, domain.ColorTeal, got.Color)

	svc.Title = "Web Apps"
	require.NoError(t, c.UpdateService(ctx, tok, "web", svc))
	list, err := c.Services(ctx, tok)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Web Apps", list[0].Title)

	require.NoError(t, c.DeleteService(ctx, tok, "web"))
	err = c.DeleteService(ctx, tok, "web")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Service not found", UserMessage(err))
}

func TestClient_Contacts(t *testing.T) {
	fake := backendtest.New(t)
	c := NewClient(fake.URL, 5*time.Second)
	ctx := context.Background()
	tok := fake.IssueToken()

	require.NoError(t, c.SubmitContact(ctx, domain.ContactSubmission{
		Name: "Ann", Email: "ann@example.com", Message: "hello there, world",
	}))
	list, err := c.Contacts(ctx, tok)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.ContactNew, list[0].Status)

	require.NoError(t, c.UpdateContactStatus(ctx, tok, list[0].ID, domain.ContactReplied))
	assert.Equal(t, domain.ContactReplied, fake.Contacts()[0].Status)

	require.NoError(t, c.DeleteContact(ctx, tok, list[0].ID))
	assert.Empty(t, fake.Contacts())
}

func TestClient_RejectsExpiredToken(t *testing.T) {
	fake := backendtest.New(t)
	c := NewClient(fake.URL, 5*time.Second)

	_, err := c.Portfolio(context.Background(), fake.IssueExpiredToken())
	assert.True(t, IsUnauthorized(err))
}
