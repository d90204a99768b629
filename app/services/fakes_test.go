package services

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/repositories"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repositories.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	r.byEmail[user.Email] = user
	return nil
}

type fakeProductRepo struct {
	products []models.Product
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) All(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeOrderRepo struct {
	orders []models.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) ByUser(_ context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeDisk records puts and can be told to fail specific paths by
// filename extension marker in the content.
type fakeDisk struct {
	files   map[string][]byte
	failNth map[int]bool // fail the nth Put (0-based)
	puts    int
}

func newFakeDisk() *fakeDisk {
	return &fakeDisk{files: make(map[string][]byte), failNth: make(map[int]bool)}
}

func (d *fakeDisk) Put(_ context.Context, path string, content []byte) error {
	n := d.puts
	d.puts++
	if d.failNth[n] {
		return errors.New("sink unavailable")
	}
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(ctx context.Context, path string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.Put(ctx, path, content)
}

func (d *fakeDisk) Get(_ context.Context, path string) ([]byte, error) {
	if b, ok := d.files[path]; ok {
		return b, nil
	}
	return nil, errors.New("no such file")
}

func (d *fakeDisk) Exists(_ context.Context, path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Delete(_ context.Context, path string) error {
	delete(d.files, path)
	return nil
}

func (d *fakeDisk) URL(path string) string {
	return "https://media.test/" + path
}
