package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/auth"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

// fakeUsers is the only store the token/role scenario touches.
type fakeUsers struct {
	docs        []models.User
	insertCalls int
}

func (f *fakeUsers) All(context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.docs...), nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.docs {
		if f.docs[i].Email == email {
			u := f.docs[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Instructors(context.Context) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUsers) Insert(_ context.Context, u models.User) (store.InsertResult, error) {
	f.insertCalls++
	u.ID = primitive.NewObjectID()
	f.docs = append(f.docs, u)
	return store.InsertResult{InsertedID: u.ID.Hex()}, nil
}

func (f *fakeUsers) SetRole(_ context.Context, id string, role models.Role) (store.UpdateResult, error) {
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs[i].Role = role
			return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateResult{}, nil
}

func (f *fakeUsers) RoleByEmail(ctx context.Context, email string) (models.Role, error) {
	u, err := f.ByEmail(ctx, email)
	if err != nil || u == nil {
		return models.RoleNone, err
	}
	return u.Role, nil
}

func newTestRouter(users *fakeUsers) (http.Handler, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	st := &store.Store{Users: users}
	return SetupRouter(st, tokens, nil), tokens
}

func issueToken(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"email": email})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestLiveness(t *testing.T) {
	router, _ := newTestRouter(&fakeUsers{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MaxCoach is running", rec.Body.String())
}

func TestAdminEndpointWithoutTokenIs401(t *testing.T) {
	users := &fakeUsers{}
	router, _ := newTestRouter(users)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 0, users.insertCalls)
	require.Empty(t, users.docs)
}

func TestTokenThenAdminListScenario(t *testing.T) {
	users := &fakeUsers{docs: []models.User{
		{ID: primitive.NewObjectID(), Name: "A", Email: "a@b.com", Role: models.RoleAdmin},
		{ID: primitive.NewObjectID(), Name: "B", Email: "b@b.com"},
	}}
	router, _ := newTestRouter(users)

	token := issueToken(t, router, "a@b.com")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
}

func TestSameTokenWithInstructorRoleIs403(t *testing.T) {
	users := &fakeUsers{docs: []models.User{
		{ID: primitive.NewObjectID(), Name: "A", Email: "a@b.com", Role: models.RoleInstructor},
	}}
	router, _ := newTestRouter(users)

	token := issueToken(t, router, "a@b.com")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "Forbidden Access", body["message"])
}

func TestPromoteRequiresAdmin(t *testing.T) {
	target := primitive.NewObjectID()
	users := &fakeUsers{docs: []models.User{
		{ID: primitive.NewObjectID(), Email: "admin@b.com", Role: models.RoleAdmin},
		{ID: target, Email: "b@b.com"},
	}}
	router, _ := newTestRouter(users)

	token := issueToken(t, router, "admin@b.com")

	req := httptest.NewRequest(http.MethodPatch, "/users/instructor/"+target.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, models.RoleInstructor, users.docs[1].Role)
}
