package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]interface{},
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// DBClient defines the interface for a generic database client.
// It abstracts common database operations across different database types (e.g., MongoDB, SQL).
type DBClient interface {
	// Connect establishes a connection to the database.
	// It takes a context for cancellation and timeouts, and a DSN (Data Source Name) string.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the specified collection/table
	// and returns the ID of the inserted document (e.g., MongoDB ObjectID, SQL primary key).
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// FindOne retrieves a single document from the specified collection/table
	// that matches the provided filter and decodes it into 'result'.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves multiple documents from the specified collection/table
	// that match the provided filter.
	FindMany(ctx context.Context, collectionName string, filter Document) ([]Document, error)

	// EnsureSchema applies a driver specific schema definition, such as an
	// index model for MongoDB or a CREATE TABLE statement for PostgreSQL.
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error
}
