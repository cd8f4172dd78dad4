package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Database wraps the GORM DB handle and exposes repository helpers.
type Database struct {
	gorm *gorm.DB
	mu   sync.Mutex
}

// Open initializes the SQLite-backed database at the provided path.
func Open(path string, silent bool) (*Database, error) {
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&Inference{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	if err := db.Exec("PRAGMA synchronous=NORMAL").Error; err != nil {
		logrus.WithError(err).Warn("set synchronous pragma")
	}
	if err := applyIndexes(db); err != nil {
		return nil, fmt.Errorf("apply indexes: %w", err)
	}
	return &Database{gorm: db}, nil
}

// GORM exposes the raw gorm.DB handle.
func (d *Database) GORM() *gorm.DB {
	return d.gorm
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveInference inserts or updates the inference row for a domain.
func (d *Database) SaveInference(inf *Inference) error {
	if inf == nil {
		return errors.New("inference is nil")
	}
	inf.Domain = strings.TrimSpace(inf.Domain)
	inf.DomainNormalized = normalizeDomainKey(inf.Domain)
	if inf.DomainNormalized == "" {
		return errors.New("inference has no domain")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "domain_normalized"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"url", "domain", "country", "probability",
			"distribution_json", "processing_time_ms", "updated_at",
		}),
	}).Create(inf).Error
}

// GetInference returns the stored inference for a domain, or nil when the
// domain has not been inferred yet.
func (d *Database) GetInference(domain string) (*Inference, error) {
	var row Inference
	err := d.gorm.Where("domain_normalized = ?", normalizeDomainKey(domain)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// InferenceQuery encapsulates filters and pagination for listing inferences.
type InferenceQuery struct {
	Query          string
	Country        string
	MinProbability float64
	Sort           string
	Offset         int
	Limit          int
}

// ListInferences returns paginated inference rows applying optional filters.
func (d *Database) ListInferences(opts InferenceQuery) ([]Inference, int64, error) {
	var total int64
	base := d.gorm.Model(&Inference{})
	if opts.Query != "" {
		base = base.Where("domain LIKE ?", fmt.Sprintf("%%%s%%", opts.Query))
	}
	if c := strings.TrimSpace(opts.Country); c != "" {
		base = base.Where("country = ?", c)
	}
	if opts.MinProbability > 0 {
		base = base.Where("probability >= ?", opts.MinProbability)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order(orderForSort(opts.Sort)).Offset(opts.Offset)
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var rows []Inference
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountInferences returns the number of stored inferences.
func (d *Database) CountInferences() (int64, error) {
	var count int64
	if err := d.gorm.Model(&Inference{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ClearInferences removes previously stored inferences (useful before
// re-processing with a retrained model).
func (d *Database) ClearInferences() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Inference{}).Error
}

// CountryCount is one row of the per-country inference summary.
type CountryCount struct {
	Country string
	Total   int
}

// CountryCounts aggregates stored inferences by inferred country, most
// common first.
func (d *Database) CountryCounts(limit int) ([]CountryCount, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	if limit <= 0 {
		limit = 250
	}
	var results []CountryCount
	query := d.gorm.Table("inferences").
		Select("country, COUNT(*) AS total").
		Where("country <> ''").
		Group("country").
		Order("total DESC").
		Limit(limit)
	if err := query.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("country counts: %w", err)
	}
	return results, nil
}

func orderForSort(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "domain_asc":
		return "inferences.domain ASC"
	case "domain_desc":
		return "inferences.domain DESC"
	case "probability_asc":
		return "inferences.probability ASC, inferences.id DESC"
	case "probability_desc":
		return "inferences.probability DESC, inferences.id DESC"
	case "created_asc":
		return "inferences.created_at ASC"
	case "created_desc":
		return "inferences.created_at DESC"
	default:
		return "inferences.id DESC"
	}
}

func normalizeDomainKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func applyIndexes(db *gorm.DB) error {
	stmts := []string{
		"UPDATE inferences SET domain_normalized = LOWER(domain) WHERE domain IS NOT NULL AND (domain_normalized IS NULL OR domain_normalized = '')",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_inferences_domain_normalized ON inferences(domain_normalized)",
		"CREATE INDEX IF NOT EXISTS idx_inferences_country ON inferences(country)",
		"CREATE INDEX IF NOT EXISTS idx_inferences_probability ON inferences(probability)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
