package store

import (
	"context"
	_ "embed"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kunal-oza/churn-prediction-service/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// Session is one transactional unit of work over the two churn tables. The
// profile upsert and the prediction append staged in a session become visible
// together on Commit, or not at all on Rollback.
type Session interface {
	FindProfile(ctx context.Context, customerID int) (*models.CustomerProfile, error)
	UpsertProfile(ctx context.Context, p *models.CustomerProfile) error
	AppendPrediction(ctx context.Context, rec *models.PredictionRecord) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Gateway opens transactional sessions. Defined here so callers can be tested
// against a fake store.
type Gateway interface {
	Begin(ctx context.Context) (Session, error)
}

// PostgresStore is the durable persistence layer for profiles and predictions.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Gateway = (*PostgresStore)(nil)

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// Begin opens a transactional session.
func (p *PostgresStore) Begin(ctx context.Context) (Session, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &txSession{tx: tx}, nil
}

const profileColumns = `customer_id, gender, senior_citizen, partner, dependents, tenure,
	phone_service, multiple_lines, internet_service, online_security, online_backup,
	device_protection, tech_support, streaming_tv, streaming_movies, contract,
	paperless_billing, payment_method, monthly_charges, total_charges, updated_at`

// GetProfile reads the current profile outside any session. Returns (nil, nil)
// when the customer is unknown.
func (p *PostgresStore) GetProfile(ctx context.Context, customerID int) (*models.CustomerProfile, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM customer_profiles
		WHERE customer_id = $1
	`, strconv.Itoa(customerID))
	return scanProfile(row)
}

// ListPredictions returns a customer's prediction history, oldest first.
func (p *PostgresStore) ListPredictions(ctx context.Context, customerID int) ([]models.PredictionRecord, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, customer_id, label, created_at
		FROM predictions
		WHERE customer_id = $1
		ORDER BY created_at, id
	`, strconv.Itoa(customerID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.PredictionRecord{}
	for rows.Next() {
		var rec models.PredictionRecord
		var id string
		if err := rows.Scan(&rec.ID, &id, &rec.Label, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.CustomerID, err = strconv.Atoi(id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// txSession implements Session over a single pgx transaction.
type txSession struct {
	tx pgx.Tx
}

func (s *txSession) FindProfile(ctx context.Context, customerID int) (*models.CustomerProfile, error) {
	row := s.tx.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM customer_profiles
		WHERE customer_id = $1
	`, strconv.Itoa(customerID))
	return scanProfile(row)
}

// UpsertProfile stages a full replace of every mutable attribute, creating the
// row when the customer is new. Not visible to other requests until Commit.
func (s *txSession) UpsertProfile(ctx context.Context, p *models.CustomerProfile) error {
	_, err := s.tx.Exec(ctx, `
		INSERT INTO customer_profiles (
			customer_id, gender, senior_citizen, partner, dependents, tenure,
			phone_service, multiple_lines, internet_service, online_security, online_backup,
			device_protection, tech_support, streaming_tv, streaming_movies, contract,
			paperless_billing, payment_method, monthly_charges, total_charges, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20, now())
		ON CONFLICT (customer_id) DO UPDATE SET
			gender            = EXCLUDED.gender,
			senior_citizen    = EXCLUDED.senior_citizen,
			partner           = EXCLUDED.partner,
			dependents        = EXCLUDED.dependents,
			tenure            = EXCLUDED.tenure,
			phone_service     = EXCLUDED.phone_service,
			multiple_lines    = EXCLUDED.multiple_lines,
			internet_service  = EXCLUDED.internet_service,
			online_security   = EXCLUDED.online_security,
			online_backup     = EXCLUDED.online_backup,
			device_protection = EXCLUDED.device_protection,
			tech_support      = EXCLUDED.tech_support,
			streaming_tv      = EXCLUDED.streaming_tv,
			streaming_movies  = EXCLUDED.streaming_movies,
			contract          = EXCLUDED.contract,
			paperless_billing = EXCLUDED.paperless_billing,
			payment_method    = EXCLUDED.payment_method,
			monthly_charges   = EXCLUDED.monthly_charges,
			total_charges     = EXCLUDED.total_charges,
			updated_at        = now()
	`,
		strconv.Itoa(p.CustomerID), p.Gender, p.SeniorCitizen, p.Partner, p.Dependents, p.Tenure,
		p.PhoneService, p.MultipleLines, p.InternetService, p.OnlineSecurity, p.OnlineBackup,
		p.DeviceProtection, p.TechSupport, p.StreamingTV, p.StreamingMovies, p.Contract,
		p.PaperlessBilling, p.PaymentMethod, p.MonthlyCharges, p.TotalCharges,
	)
	return err
}

// AppendPrediction stages one new row of the append-only prediction log.
func (s *txSession) AppendPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	return s.tx.QueryRow(ctx, `
		INSERT INTO predictions (id, customer_id, label, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING created_at
	`, rec.ID, strconv.Itoa(rec.CustomerID), rec.Label).Scan(&rec.CreatedAt)
}

func (s *txSession) Commit(ctx context.Context) error {
	return s.tx.Commit(ctx)
}

// Rollback discards staged writes. Calling it after Commit is a no-op, so it
// is safe to defer.
func (s *txSession) Rollback(ctx context.Context) error {
	err := s.tx.Rollback(ctx)
	if err != nil && errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func scanProfile(row pgx.Row) (*models.CustomerProfile, error) {
	var p models.CustomerProfile
	var id string
	err := row.Scan(
		&id, &p.Gender, &p.SeniorCitizen, &p.Partner, &p.Dependents, &p.Tenure,
		&p.PhoneService, &p.MultipleLines, &p.InternetService, &p.OnlineSecurity, &p.OnlineBackup,
		&p.DeviceProtection, &p.TechSupport, &p.StreamingTV, &p.StreamingMovies, &p.Contract,
		&p.PaperlessBilling, &p.PaymentMethod, &p.MonthlyCharges, &p.TotalCharges, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.CustomerID, err = strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
