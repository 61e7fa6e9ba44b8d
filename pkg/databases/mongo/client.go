package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/haguru/signup/config"
	"github.com/haguru/signup/internal/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MAXPOOLSIZE = 20
	IDFIELD     = "_id"
)

var (
	// ErrNoDocuments is returned (wrapped) by FindOne when nothing matches the filter.
	ErrNoDocuments = mongo.ErrNoDocuments
	// ErrInvalidField is returned when a document or filter uses a field
	// outside the configured valid fields.
	ErrInvalidField = errors.New("MongoDBClient: invalid or unsafe field name")
	// ErrEmptyFilter is returned by FindOne for a filter without conditions.
	ErrEmptyFilter = errors.New("MongoDBClient: FindOne requires a non-empty filter")
)

// MongoDBClient implements the interfaces.DBClient interface for MongoDB operations.
type MongoDBClient struct {
	ServerOpts       *options.ServerAPIOptions
	client           *mongo.Client
	db               *mongo.Database
	logger           interfaces.Logger
	timeout          time.Duration
	validCollections map[string]bool // A map to validate collection names
	validFields      map[string]bool // A map to validate field names
}

// NewMongoDB returns a MongoDB client configured from dbConfig. Connect must
// be called before use.
func NewMongoDB(dbConfig *config.MongoDBConfig, logger interfaces.Logger) (*MongoDBClient, error) {
	if dbConfig == nil {
		return nil, fmt.Errorf("MongoDBClient: configuration is required")
	}

	db := &MongoDBClient{
		logger:           logger,
		timeout:          dbConfig.Timeout,
		ServerOpts:       config.BuildServerAPIOptions(dbConfig.Options),
		validCollections: config.ListToMap(dbConfig.ValidCollections),
		validFields:      config.ListToMap(dbConfig.ValidFields),
	}

	return db, nil
}

// Connect establishes a connection to the MongoDB database using the provided DSN (Data Source Name).
// The DSN should be in the format "mongodb://<host>:<port>/<database>"; the
// database named in its path becomes the active database.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	if err := validateDSN(dsn); err != nil {
		return err
	}

	databaseName, err := getDBNameFromMongoDSN(dsn)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed to extract database name from datasource name(dsn): %w", err)
	}

	// Set a timeout for the connection
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	clientOptions := options.Client().ApplyURI(dsn)

	// Set the server API options if provided
	if m.ServerOpts != nil {
		clientOptions.SetServerAPIOptions(m.ServerOpts)
	}
	clientOptions.SetMaxPoolSize(MAXPOOLSIZE)
	clientOptions.SetReadPreference(readpref.PrimaryPreferred())

	m.logger.Info("MongoDBClient: Connecting", "database", databaseName)
	m.client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	if err = m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDBClient: Failed to connect to MongoDB server: %w", err)
	}
	m.logger.Info("MongoDBClient: Connected to MongoDB server successfully")

	m.db = m.client.Database(databaseName)
	return nil
}

// Disconnect closes the connection to the MongoDB database.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	m.logger.Info("MongoDBClient: Disconnecting")
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}

	return nil
}

// InsertOne inserts a document and returns its ID. A caller supplied _id is
// dropped so that the server assigns one.
func (m *MongoDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	// Avoid logging the document, it may contain password hashes
	m.logger.Debug("MongoDBClient: Inserting one", "collection", collectionName)

	if err := m.checkCollection(collectionName); err != nil {
		return nil, err
	}

	sanitizedDocument, err := m.sanitizeDocument(document, false)
	if err != nil {
		return nil, err
	}

	res, err := m.db.Collection(collectionName).InsertOne(ctx, sanitizedDocument)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Failed to insert one into %s: %w", collectionName, err)
	}

	return res.InsertedID, nil
}

// FindOne retrieves a single document from the specified collection using a filter
// and decodes it into result. It returns an error wrapping ErrNoDocuments when
// nothing matches, and ErrEmptyFilter when the filter has no conditions.
func (m *MongoDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	m.logger.Debug("MongoDBClient: Finding one", "collection", collectionName)

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return err
	}
	if len(sanitizedFilter) == 0 {
		return ErrEmptyFilter
	}

	if err := m.checkCollection(collectionName); err != nil {
		return err
	}

	err = m.db.Collection(collectionName).FindOne(ctx, sanitizedFilter).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("MongoDBClient: No document found in %s: %w", collectionName, err)
		}
		return fmt.Errorf("MongoDBClient: Failed to find one in %s: %w", collectionName, err)
	}

	return nil
}

// FindMany retrieves multiple documents from the specified collection.
func (m *MongoDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document) ([]interfaces.Document, error) {
	m.logger.Debug("MongoDBClient: Finding many", "collection", collectionName)

	if err := m.checkCollection(collectionName); err != nil {
		return nil, err
	}

	sanitizedFilter, err := m.sanitizeDocument(filter, true)
	if err != nil {
		return nil, err
	}

	cursor, err := m.db.Collection(collectionName).Find(ctx, sanitizedFilter)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Finding many in %s failed: %w", collectionName, err)
	}

	defer func() {
		if err := cursor.Close(ctx); err != nil {
			m.logger.Warn("MongoDBClient: Failed to close cursor", "error", err)
		}
	}()

	var results []interfaces.Document
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("MongoDBClient: Failed to decode cursor: %w", err)
		}
		results = append(results, doc)
	}

	return results, cursor.Err()
}

// Ping verifies the MongoDB connection health using a ping command.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("MongoDBClient is not connected")
	}
	return m.client.Ping(ctx, nil)
}

// EnsureSchema creates the required index on the specified collection using the provided mongo.IndexModel.
// If the collection does not exist, it will be created automatically.
func (m *MongoDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	if m.db == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}

	model, ok := schema.(mongo.IndexModel)
	if !ok {
		return fmt.Errorf("EnsureSchema: expected mongo.IndexModel for MongoDB")
	}

	_, err := m.db.Collection(collectionName).Indexes().CreateOne(ctx, model)
	return err
}

func (m *MongoDBClient) checkCollection(collectionName string) error {
	if collectionName == "" {
		return fmt.Errorf("MongoDBClient: Collection name cannot be empty")
	}
	if !m.validCollections[collectionName] {
		return fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}
	if m.db == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}
	return nil
}

// sanitizeDocument copies the document after checking every key against the
// configured field names, which guards against NoSQL injection. A key that is
// not allowed, or that contains operator characters, is an error. The _id
// field is kept only when allowID is set (filters) and dropped for inserts.
func (m *MongoDBClient) sanitizeDocument(document interfaces.Document, allowID bool) (bson.M, error) {
	if document == nil {
		return bson.M{}, nil
	}

	var docMap map[string]interface{}
	switch d := document.(type) {
	case bson.M:
		docMap = d
	case map[string]interface{}:
		docMap = d
	default:
		return nil, fmt.Errorf("MongoDBClient: document must be a map, got %T", document)
	}

	sanitized := bson.M{}
	for key, value := range docMap {
		if key == IDFIELD && !allowID {
			continue
		}

		if strings.ContainsAny(key, "$.") || !m.validFields[key] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, key)
		}

		sanitized[key] = value
	}

	return sanitized, nil
}

func validateDSN(dsn string) error {
	if dsn == "" {
		return fmt.Errorf("MongoDBClient: DSN is empty")
	}
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("MongoDBClient: Invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'")
	}
	return nil
}

// getDBNameFromMongoDSN extracts the database name from a MongoDB DSN.
func getDBNameFromMongoDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MongoDB DSN: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("no database name found in MongoDB DSN path")
	}

	// If the path contains additional segments (e.g., /db/collection), use only the first as the database name.
	if idx := strings.Index(dbName, "/"); idx != -1 {
		dbName = dbName[:idx]
	}

	return dbName, nil
}
