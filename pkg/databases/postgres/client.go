package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/haguru/signup/config"
	"github.com/haguru/signup/internal/interfaces"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second

	driverName = "postgres"
	idColumn   = "id"
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL databases.
type PostgresDatabaseClient struct {
	db              *sql.DB
	logger          interfaces.Logger
	MaxOpenConns    int           // MaxOpenConns is the maximum number of open connections to the database
	MaxIdleConns    int           // MaxIdleConns is the maximum number of idle connections to the database
	ConnMaxLifetime time.Duration // ConnMaxLifetime is the maximum amount of time a connection may be reused
}

// NewPostgresDatabaseClient creates a client from configuration. Unset pool
// options fall back to the package defaults. Connect must be called before use.
func NewPostgresDatabaseClient(cfg *config.PostgresConfig, logger interfaces.Logger) *PostgresDatabaseClient {
	client := &PostgresDatabaseClient{
		logger:          logger,
		MaxOpenConns:    DefaultMaxOpenConns,
		MaxIdleConns:    DefaultMaxIdleConns,
		ConnMaxLifetime: DefaultConnMaxLifetime,
	}
	if cfg.Options.MaxOpenConns > 0 {
		client.MaxOpenConns = cfg.Options.MaxOpenConns
	}
	if cfg.Options.MaxIdleConns > 0 {
		client.MaxIdleConns = cfg.Options.MaxIdleConns
	}
	if cfg.Options.ConnMaxLifetime > 0 {
		client.ConnMaxLifetime = cfg.Options.ConnMaxLifetime
	}
	return client
}

// NewPostgresDatabaseClientFromDB wraps an already opened database handle.
func NewPostgresDatabaseClientFromDB(db *sql.DB, logger interfaces.Logger) *PostgresDatabaseClient {
	return &PostgresDatabaseClient{
		db:     db,
		logger: logger,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	p.logger.Info("Connecting to PostgreSQL", "max_open_conns", p.MaxOpenConns)
	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		p.logger.Info("Disconnecting from PostgreSQL")
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single document into a PostgreSQL table.
// 'document' is expected to be a map[string]interface{}; an "id" column is
// generated as a UUID when absent. Columns are written in sorted order.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (interface{}, error) {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL InsertOne expects document to be map[string]interface{}")
	}
	if p.db == nil {
		return nil, fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	row := make(map[string]interface{}, len(docMap)+1)
	for col, val := range docMap {
		row[col] = val
	}
	if _, exists := row[idColumn]; !exists {
		row[idColumn] = uuid.New().String()
	}

	columns := sortedKeys(row)
	placeholders := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		values = append(values, row[col])
	}

	//This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201

	var insertedID interface{} // Can be string (UUID), int, etc.
	err := p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID)
	if err != nil {
		return nil, err
	}
	if b, ok := insertedID.([]byte); ok {
		return string(b), nil
	}
	return insertedID, nil
}

// FindOne retrieves a single document from a PostgreSQL table.
// 'filter' is expected to be a map[string]interface{} for WHERE clause.
// 'result' is a pointer to a struct; columns are taken from the `db` tag of
// each field, or the lowercased field name when the tag is absent.
// When no row matches, result is reset to its zero value and nil is returned.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return fmt.Errorf("PostgreSQL FindOne expects filter to be map[string]interface{}")
	}
	if len(filterMap) == 0 {
		return fmt.Errorf("PostgreSQL FindOne requires a non-empty filter")
	}

	resultValue := reflect.ValueOf(result)
	if resultValue.Kind() != reflect.Ptr || resultValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("result must be a pointer to a struct")
	}
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	whereString, whereValues := buildWhere(filterMap, 1)

	elem := resultValue.Elem()
	numFields := elem.NumField()
	columns := make([]string, numFields)
	fieldPointers := make([]interface{}, numFields) // Pointers to fields in the struct for Scan()
	for i := 0; i < numFields; i++ {
		columns[i] = columnName(elem.Type().Field(i))
		fieldPointers[i] = elem.Field(i).Addr().Interface()
	}

	//This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		strings.Join(columns, ", "),
		tableName,
		whereString,
	) // #nosec G201

	err := p.db.QueryRowContext(ctx, query, whereValues...).Scan(fieldPointers...)
	if errors.Is(err, sql.ErrNoRows) {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}
	return err
}

// FindMany retrieves multiple documents from a PostgreSQL table.
// 'filter' is expected to be a map[string]interface{}.
// Each row is returned as a map[string]interface{} keyed by column name.
func (p *PostgresDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document) ([]interfaces.Document, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL FindMany expects filter to be map[string]interface{}")
	}
	if p.db == nil {
		return nil, fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	whereString := ""
	whereClause, whereValues := buildWhere(filterMap, 1)
	if whereClause != "" {
		whereString = " WHERE " + whereClause
	}

	//This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("SELECT * FROM %s%s", tableName, whereString) // #nosec G201

	rows, err := p.db.QueryContext(ctx, query, whereValues...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			p.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []interfaces.Document
	for rows.Next() {
		columnPointers := make([]interface{}, len(columns))
		columnValues := make([]interface{}, len(columns))
		for i := range columns {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		rowMap := make(map[string]interface{}, len(columns))
		for i, colName := range columns {
			val := columnValues[i]
			if b, ok := val.([]byte); ok { // Handle byte slices for string-like types
				rowMap[colName] = string(b)
			} else {
				rowMap[colName] = val
			}
		}
		results = append(results, rowMap)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Ping checks the health of the PostgreSQL connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	return p.db.PingContext(ctx)
}

// EnsureSchema executes a CREATE TABLE (or similar DDL) statement for tableName.
// 'schema' must be the statement as a string.
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, schema interfaces.Document) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	createStmt, ok := schema.(string)
	if !ok || createStmt == "" {
		return fmt.Errorf("EnsureSchema expects schema to be a CREATE TABLE statement string")
	}

	p.logger.Debug("Ensuring PostgreSQL schema", "table", tableName)
	_, err := p.db.ExecContext(ctx, createStmt)
	return err
}

// buildWhere renders "col = $n" clauses joined by AND, starting at placeholder
// index start. Columns are sorted so the statement is stable.
func buildWhere(filter map[string]interface{}, start int) (string, []interface{}) {
	columns := sortedKeys(filter)
	clauses := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, start+i))
		values = append(values, filter[col])
	}
	return strings.Join(clauses, " AND "), values
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func columnName(field reflect.StructField) string {
	if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
		return tag
	}
	return strings.ToLower(field.Name)
}
