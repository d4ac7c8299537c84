package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/chronoval/calendrical-go/chrono"
	"github.com/chronoval/calendrical-go/chrono/sqlconv"
)

const (
	defaultScheduleTableName = "billing_schedules"
	dialectPostgres          = "postgres"
	colID                    = "id"
	colCustomer              = "customer"
	colBillingMonth          = "billing_month"
	colTrialPeriod           = "trial_period"
	colGraceSeconds          = "grace_seconds"
)

var (
	// ErrNilDatabaseConnection is returned when a store is created without a connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyScheduleTableName is returned when an empty table name is configured.
	ErrEmptyScheduleTableName = errors.New("empty schedule table name supplied")
)

// Logger interface for SQL query logging and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ScheduleRecord is a stored billing schedule: which month a customer bills
// in, the trial period granted, and the per-cycle grace allowance.
type ScheduleRecord struct {
	ID           uuid.UUID
	Customer     string
	BillingMonth *chrono.YearMonth
	TrialPeriod  *chrono.Period
	Grace        *chrono.Seconds
}

// ScheduleStore persists billing schedules through a database adapter.
type ScheduleStore struct {
	db        DBAdapter
	tableName string
	logger    Logger
}

// Option defines a functional option for configuring ScheduleStore.
type Option func(*ScheduleStore) error

// WithTableName sets the table name for the ScheduleStore.
func WithTableName(tableName string) Option {
	return func(s *ScheduleStore) error {
		if tableName == "" {
			return ErrEmptyScheduleTableName
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the ScheduleStore.
func WithLogger(logger Logger) Option {
	return func(s *ScheduleStore) error {
		s.logger = logger
		return nil
	}
}

// NewScheduleStoreFromPGXPool creates a new ScheduleStore using a pgx pool.
func NewScheduleStoreFromPGXPool(pool *pgxpool.Pool, options ...Option) (ScheduleStore, error) {
	if pool == nil {
		return ScheduleStore{}, ErrNilDatabaseConnection
	}

	return newScheduleStore(&pgxAdapter{pool: pool}, options...)
}

// NewScheduleStoreFromSQLDB creates a new ScheduleStore using a database/sql connection.
func NewScheduleStoreFromSQLDB(db *sql.DB, options ...Option) (ScheduleStore, error) {
	if db == nil {
		return ScheduleStore{}, ErrNilDatabaseConnection
	}

	return newScheduleStore(&sqlAdapter{db: db}, options...)
}

// NewScheduleStoreFromSQLX creates a new ScheduleStore using a sqlx connection.
func NewScheduleStoreFromSQLX(db *sqlx.DB, options ...Option) (ScheduleStore, error) {
	if db == nil {
		return ScheduleStore{}, ErrNilDatabaseConnection
	}

	return newScheduleStore(&sqlxAdapter{db: db}, options...)
}

func newScheduleStore(db DBAdapter, options ...Option) (ScheduleStore, error) {
	store := ScheduleStore{
		db:        db,
		tableName: defaultScheduleTableName,
	}

	for _, option := range options {
		if err := option(&store); err != nil {
			return ScheduleStore{}, err
		}
	}

	return store, nil
}

// Save inserts a schedule record, storing the calendrical columns in their
// canonical text and integer forms.
func (s ScheduleStore) Save(ctx context.Context, record ScheduleRecord) error {
	billingMonth, err := sqlconv.NullYearMonth{YearMonth: record.BillingMonth, Valid: true}.Value()
	if err != nil {
		return err
	}

	trialPeriod, err := sqlconv.NullPeriod{Period: record.TrialPeriod, Valid: true}.Value()
	if err != nil {
		return err
	}

	graceSeconds, err := sqlconv.NullSeconds{Seconds: record.Grace, Valid: true}.Value()
	if err != nil {
		return err
	}

	query, _, err := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Rows(goqu.Record{
			colID:           record.ID.String(),
			colCustomer:     record.Customer,
			colBillingMonth: billingMonth,
			colTrialPeriod:  trialPeriod,
			colGraceSeconds: graceSeconds,
		}).
		ToSQL()
	if err != nil {
		s.logError("failed to build insert query", err)
		return err
	}

	s.logDebug("executing sql", "query", query)

	if execErr := s.db.Exec(ctx, query); execErr != nil {
		s.logError("schedule insert failed", execErr)
		return execErr
	}

	return nil
}

// FindByCustomer returns all schedule records stored for a customer, mapped
// back through the validating chrono factories.
func (s ScheduleStore) FindByCustomer(ctx context.Context, customer string) ([]ScheduleRecord, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colID, colCustomer, colBillingMonth, colTrialPeriod, colGraceSeconds).
		Where(goqu.C(colCustomer).Eq(customer)).
		Order(goqu.C(colBillingMonth).Asc()).
		ToSQL()
	if err != nil {
		s.logError("failed to build select query", err)
		return nil, err
	}

	s.logDebug("executing sql", "query", query)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		s.logError("schedule query failed", err)
		return nil, err
	}

	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logWarn("failed to close database rows", "error", closeErr.Error())
		}
	}()

	var records []ScheduleRecord

	for rows.Next() {
		var (
			id           string
			billingMonth sqlconv.NullYearMonth
			trialPeriod  sqlconv.NullPeriod
			graceSeconds sqlconv.NullSeconds
			record       ScheduleRecord
		)

		if scanErr := rows.Scan(&id, &record.Customer, &billingMonth, &trialPeriod, &graceSeconds); scanErr != nil {
			s.logError("failed to scan database row", scanErr)
			return nil, scanErr
		}

		parsedID, parseErr := uuid.Parse(id)
		if parseErr != nil {
			s.logError("failed to parse schedule id", parseErr)
			return nil, parseErr
		}

		record.ID = parsedID
		record.BillingMonth = billingMonth.YearMonth
		record.TrialPeriod = trialPeriod.Period
		record.Grace = graceSeconds.Seconds

		records = append(records, record)
	}

	return records, nil
}

func (s ScheduleStore) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s ScheduleStore) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s ScheduleStore) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(fmt.Sprintf("%s: %s", msg, err))
	}
}
