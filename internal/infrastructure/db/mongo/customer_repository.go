package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

type CustomerRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{db: db, col: db.Collection(collectionCustomers)}
}

type customerDocument struct {
	ID            int64   `bson:"_id"`
	Name          *string `bson:"name"`
	Address       *string `bson:"address"`
	Phone         *string `bson:"phone"`
	Fax           *string `bson:"fax"`
	Email         *string `bson:"email"`
	ContactPerson *string `bson:"contact_person"`
	Website       *string `bson:"website"`
}

// Create assigns the next customer id and inserts the document.
func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionCustomers)
	if err != nil {
		return err
	}
	c.ID = id
	if _, err := r.col.InsertOne(ctx, toCustomerDocument(c)); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []customerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}

	out := make([]domain.Customer, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc customerDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, toCustomerDocument(c))
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func toCustomerDocument(c *domain.Customer) customerDocument {
	return customerDocument{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		Fax:           c.Fax,
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		Website:       c.Website,
	}
}

func (doc customerDocument) toDomain() domain.Customer {
	return domain.Customer{
		ID:            doc.ID,
		Name:          doc.Name,
		Address:       doc.Address,
		Phone:         doc.Phone,
		Fax:           doc.Fax,
		Email:         doc.Email,
		ContactPerson: doc.ContactPerson,
		Website:       doc.Website,
	}
}
