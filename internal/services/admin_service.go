package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gridhire/gridhire/internal/cache"
	"github.com/gridhire/gridhire/internal/models"
	mongorepo "github.com/gridhire/gridhire/internal/repositories/mongo"
	"github.com/gridhire/gridhire/internal/utils"
)

const (
	cacheKeyReports   = "admin:reports"
	cacheKeyAnalytics = "admin:analytics"
	adminCacheTTL     = time.Minute

	// analytics and unfiltered listings scan at most this many reports
	maxReportScan = 1000

	dateLayout = "2006-01-02"
)

// AdminCredentials configures the single admin account and token signing.
type AdminCredentials struct {
	Username     string
	PasswordHash string
	JWTSecret    []byte
	TokenTTL     time.Duration
}

type adminTokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
	ListReports(ctx context.Context, fromDate, toDate string) ([]models.Report, error)
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
	Analytics(ctx context.Context) (*models.Analytics, error)
}

type adminService struct {
	creds   AdminCredentials
	reports mongorepo.ReportRepository
	cache   cache.Cache
	log     *logrus.Logger
}

func NewAdminService(creds AdminCredentials, reports mongorepo.ReportRepository, c cache.Cache, log *logrus.Logger) AdminService {
	if creds.TokenTTL <= 0 {
		creds.TokenTTL = 12 * time.Hour
	}
	return &adminService{creds: creds, reports: reports, cache: c, log: log}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	const op = "AdminService.Login"

	if username == "" || password == "" {
		return "", time.Time{}, utils.E(utils.CodeInvalidArgument, op, "username and password are required", nil)
	}
	if username != s.creds.Username || utils.CheckPassword(s.creds.PasswordHash, password) != nil {
		return "", time.Time{}, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.creds.TokenTTL)
	claims := adminTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: "admin",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.creds.JWTSecret)
	if err != nil {
		return "", time.Time{}, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, expiresAt, nil
}

func (s *adminService) ListReports(ctx context.Context, fromDate, toDate string) ([]models.Report, error) {
	const op = "AdminService.ListReports"

	var from, to *time.Time
	if fromDate != "" {
		t, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "from_date must be YYYY-MM-DD", err)
		}
		from = &t
	}
	if toDate != "" {
		t, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "to_date must be YYYY-MM-DD", err)
		}
		// to_date is inclusive, so filter below the next day
		t = t.Add(24 * time.Hour)
		to = &t
	}

	filtered := from != nil || to != nil
	if !filtered && s.cache != nil {
		var cached []models.Report
		if hit, err := s.cache.GetJSON(ctx, cacheKeyReports, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.reports.List(ctx, from, to, maxReportScan)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list reports", err)
	}

	if !filtered && s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKeyReports, out, adminCacheTTL); err != nil {
			s.log.WithError(err).Warn("report list cache write failed")
		}
	}
	return out, nil
}

func (s *adminService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	const op = "AdminService.GetReport"

	oid, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "report_id must be a valid object id", err)
	}

	rep, err := s.reports.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "report not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get report", err)
	}
	return rep, nil
}

func (s *adminService) Analytics(ctx context.Context) (*models.Analytics, error) {
	const op = "AdminService.Analytics"

	if s.cache != nil {
		var cached models.Analytics
		if hit, err := s.cache.GetJSON(ctx, cacheKeyAnalytics, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	docs, err := s.reports.List(ctx, nil, nil, maxReportScan)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load reports", err)
	}

	out := buildAnalytics(docs)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKeyAnalytics, out, adminCacheTTL); err != nil {
			s.log.WithError(err).Warn("analytics cache write failed")
		}
	}
	return out, nil
}

// buildAnalytics counts per evaluation across the scanned reports. An empty
// store keeps the distributions empty; with data the plagiarism counts always
// carry the three expected statuses even when zero.
func buildAnalytics(docs []models.Report) *models.Analytics {
	out := &models.Analytics{
		DifficultyDistribution: map[string]int{},
		PlagiarismDistribution: map[string]int{},
	}
	if len(docs) == 0 {
		return out
	}

	sum := 0.0
	for _, d := range docs {
		sum += d.OverallScore
	}
	out.Count = len(docs)
	out.AvgScore = utils.Round3(sum / float64(len(docs)))

	out.PlagiarismDistribution = map[string]int{"original": 0, "suspicious": 0, "empty": 0}
	for _, d := range docs {
		for _, ev := range d.Evaluations {
			diff := ev.Difficulty
			if diff == "" {
				diff = "unknown"
			}
			out.DifficultyDistribution[diff]++

			status := ev.Plagiarism.Status
			if status == "" {
				status = "unknown"
			}
			out.PlagiarismDistribution[status]++
		}
	}
	return out
}
