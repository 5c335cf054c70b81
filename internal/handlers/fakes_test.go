package handlers

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

// In-memory store fakes. Each mirrors the query semantics of its Mongo
// counterpart; err fields inject failures for the error-path tests.

type fakeUsers struct {
	docs        []models.User
	insertCalls int
	err         error
}

func (f *fakeUsers) All(context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User(nil), f.docs...), nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].Email == email {
			u := f.docs[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Instructors(context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.User
	for _, u := range f.docs {
		if u.Role == models.RoleInstructor {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Insert(_ context.Context, u models.User) (store.InsertResult, error) {
	if f.err != nil {
		return store.InsertResult{}, f.err
	}
	f.insertCalls++
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.docs = append(f.docs, u)
	return store.InsertResult{InsertedID: u.ID.Hex()}, nil
}

func (f *fakeUsers) SetRole(_ context.Context, id string, role models.Role) (store.UpdateResult, error) {
	if f.err != nil {
		return store.UpdateResult{}, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.UpdateResult{}, store.ErrInvalidID
	}
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
	if err != nil {
		return models.RoleNone, err
	}
	if u == nil {
		return models.RoleNone, nil
	}
	return u.Role, nil
}

type fakeClasses struct {
	docs   []models.Class
	errInc error
}

func (f *fakeClasses) All(context.Context) ([]models.Class, error) {
	return append([]models.Class(nil), f.docs...), nil
}

func (f *fakeClasses) Approved(context.Context) ([]models.Class, error) {
	var out []models.Class
	for _, c := range f.docs {
		if c.Status == models.StatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClasses) Popular(ctx context.Context, limit int64) ([]models.Class, error) {
	approved, _ := f.Approved(ctx)
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].EnrolledStudents > approved[j].EnrolledStudents
	})
	if int64(len(approved)) > limit {
		approved = approved[:limit]
	}
	return approved, nil
}

func (f *fakeClasses) ByInstructor(_ context.Context, email string) ([]models.Class, error) {
	var out []models.Class
	for _, c := range f.docs {
		if c.InstructorEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClasses) Insert(_ context.Context, c models.Class) (store.InsertResult, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.docs = append(f.docs, c)
	return store.InsertResult{InsertedID: c.ID.Hex()}, nil
}

func (f *fakeClasses) SetStatus(_ context.Context, id string, status models.ClassStatus) (store.UpdateResult, error) {
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs[i].Status = status
			return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateResult{}, nil
}

func (f *fakeClasses) SetFeedback(_ context.Context, id, feedback string) (store.UpdateResult, error) {
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs[i].Feedback = feedback
			return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateResult{}, nil
}

func (f *fakeClasses) IncrementEnrolled(_ context.Context, id string, delta int) (store.UpdateResult, error) {
	if f.errInc != nil {
		return store.UpdateResult{}, f.errInc
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs[i].EnrolledStudents += delta
			return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateResult{}, nil
}

type fakeCarts struct {
	docs      []models.CartItem
	errDelete error
	errInsert error
}

func (f *fakeCarts) ByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range f.docs {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCarts) ByID(_ context.Context, id string) (*models.CartItem, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, store.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			item := f.docs[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeCarts) Insert(_ context.Context, item models.CartItem) (store.InsertResult, error) {
	if f.errInsert != nil {
		return store.InsertResult{}, f.errInsert
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.docs = append(f.docs, item)
	return store.InsertResult{InsertedID: item.ID.Hex()}, nil
}

func (f *fakeCarts) Delete(_ context.Context, id string) (store.DeleteResult, error) {
	if f.errDelete != nil {
		return store.DeleteResult{}, f.errDelete
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return store.DeleteResult{}, nil
}

type fakePayments struct {
	docs      []models.Payment
	errInsert error
	errDelete error
}

func (f *fakePayments) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.docs {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayments) Insert(_ context.Context, p models.Payment) (store.InsertResult, error) {
	if f.errInsert != nil {
		return store.InsertResult{}, f.errInsert
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.docs = append(f.docs, p)
	return store.InsertResult{InsertedID: p.ID.Hex()}, nil
}

func (f *fakePayments) Delete(_ context.Context, id string) (store.DeleteResult, error) {
	if f.errDelete != nil {
		return store.DeleteResult{}, f.errDelete
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return store.DeleteResult{}, nil
}

type fakeContacts struct {
	docs []models.ContactMessage
}

func (f *fakeContacts) Insert(_ context.Context, m models.ContactMessage) (store.InsertResult, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	f.docs = append(f.docs, m)
	return store.InsertResult{InsertedID: m.ID.Hex()}, nil
}

type fakeProvider struct {
	secret     string
	err        error
	lastAmount int64
}

func (f *fakeProvider) CreateIntent(_ context.Context, amount int64) (string, error) {
	f.lastAmount = amount
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
