package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"geoprovenance/backend/internal/country"
	"geoprovenance/backend/internal/geo"
	"geoprovenance/backend/internal/infer"
	"geoprovenance/backend/internal/store"
	"geoprovenance/backend/internal/urlkit"
	"geoprovenance/backend/internal/whois"
)

// Config defines server dependencies.
type Config struct {
	DBPath         string
	SilentDB       bool
	AllowedOrigins []string
	Inferrer       *infer.LogisticInferrer
	Table          *country.Table
	Geo            *geo.Provider
	WhoisCache     *whois.Cache
}

// Server wires HTTP handlers with persistence and the inference ensemble.
type Server struct {
	db             *store.Database
	inferrer       *infer.LogisticInferrer
	table          *country.Table
	geo            *geo.Provider
	whoisCache     *whois.Cache
	allowedOrigins []string
	notifier       *InferenceNotifier
	jobMu          sync.Mutex
	activeJob      *inferenceJob
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("db path required")
	}
	if cfg.Inferrer == nil {
		return nil, errors.New("inferrer required")
	}
	db, err := store.Open(cfg.DBPath, cfg.SilentDB)
	if err != nil {
		return nil, err
	}
	return &Server{
		db:             db,
		inferrer:       cfg.Inferrer,
		table:          cfg.Table,
		geo:            cfg.Geo,
		whoisCache:     cfg.WhoisCache,
		allowedOrigins: cfg.AllowedOrigins,
		notifier:       NewInferenceNotifier(),
	}, nil
}

// Close releases the underlying database handle.
func (s *Server) Close() error {
	return s.db.Close()
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api/v1")
	{
		api.GET("/infer", s.handleInfer)
		api.POST("/infer/batch", s.handleBatchInfer)
		api.GET("/infer/status", s.handleBatchStatus)
		api.DELETE("/infer/:jobID", s.handleCancelBatch)
		api.GET("/infer/stream", s.handleBatchStream)
		api.GET("/results", s.handleResults)
		api.GET("/countries", s.handleCountries)
		api.GET("/export.csv", s.handleExportCSV)
		api.GET("/export.json", s.handleExportJSON)
	}

	return r, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	coefficients := make(map[string]float64, len(s.inferrer.Features))
	for _, wf := range s.inferrer.Features {
		coefficients[wf.Feature.Name()] = wf.Coefficient
	}

	resp := gin.H{
		"intercept":    s.inferrer.Intercept,
		"coefficients": coefficients,
	}
	if s.table != nil {
		resp["countries"] = s.table.Len()
	}
	if s.geo != nil {
		resp["wikidata_entries"] = s.geo.Len()
	}
	if s.whoisCache != nil {
		resp["whois_cache_entries"] = s.whoisCache.Len()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleInfer(c *gin.Context) {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("url is required"))
		return
	}
	domain := urlkit.RegisteredDomain(url)
	if domain == "" {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("no registrable domain in %q", url))
		return
	}
	refresh, _ := strconv.ParseBool(c.Query("refresh"))

	if !refresh {
		row, err := s.db.GetInference(domain)
		if err != nil {
			s.renderError(c, http.StatusInternalServerError, err)
			return
		}
		if row != nil {
			c.JSON(http.StatusOK, FromModel(*row))
			return
		}
	}

	row, err := s.inferOne(c.Request.Context(), url, domain)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, FromModel(*row))
}

func (s *Server) handleBatchInfer(c *gin.Context) {
	var req BatchInferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	urls := make([]string, 0, len(req.URLs))
	for _, url := range req.URLs {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	if len(urls) == 0 {
		s.renderError(c, http.StatusBadRequest, errors.New("urls are required"))
		return
	}
	req.URLs = urls

	s.jobMu.Lock()
	defer s.jobMu.Unlock()
	if s.activeJob != nil {
		s.renderError(c, http.StatusConflict, errors.New("batch inference already running"))
		return
	}

	job, err := s.startBatch(req)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusAccepted, StartBatchResponse{
		JobID:     job.id,
		Total:     job.total,
		StartedAt: job.startedAt,
	})
}

func (s *Server) handleBatchStatus(c *gin.Context) {
	s.jobMu.Lock()
	job := s.activeJob
	s.jobMu.Unlock()

	status := s.notifier.LastStatus()

	resp := BatchStatusResponse{Running: job != nil}
	if job != nil {
		resp.JobID = job.id
		resp.Total = job.total
	}
	if status != nil {
		resp.State = status.Type
		resp.Message = status.Message
		if status.Processed != 0 {
			resp.Processed = status.Processed
		}
		if status.Total != 0 {
			resp.Total = status.Total
		}
		if status.Inference != nil {
			copyInference := *status.Inference
			resp.LastInference = &copyInference
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCancelBatch(c *gin.Context) {
	jobID := strings.TrimSpace(c.Param("jobID"))
	if jobID == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("job id required"))
		return
	}

	s.jobMu.Lock()
	defer s.jobMu.Unlock()
	if s.activeJob == nil {
		s.renderError(c, http.StatusNotFound, errors.New("no batch inference running"))
		return
	}
	if s.activeJob.id != jobID {
		s.renderError(c, http.StatusNotFound, errors.New("job not found"))
		return
	}

	s.activeJob.cancel()
	logrus.WithField("job", jobID).Info("batch inference cancellation requested")
	c.JSON(http.StatusAccepted, gin.H{"status": "cancelling"})
}

func (s *Server) handleBatchStream(c *gin.Context) {
	upgrader := websocket.Upgrader{
		HandshakeTimeout:  5 * time.Second,
		EnableCompression: true,
		CheckOrigin: func(r *http.Request) bool {
			if len(s.allowedOrigins) == 0 {
				return true
			}
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			for _, allowed := range s.allowedOrigins {
				if strings.EqualFold(origin, allowed) {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("upgrade websocket")
		return
	}

	client := s.notifier.Register(conn)
	logrus.WithField("remote", conn.RemoteAddr().String()).Info("inference websocket connected")
	defer s.notifier.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("remote", conn.RemoteAddr().String()).Info("inference websocket closed")
			} else {
				logrus.WithError(err).Warn("inference websocket unexpected close")
			}
			break
		}
	}
}

func (s *Server) handleResults(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	countryFilter := strings.TrimSpace(c.Query("country"))
	minProbability, _ := strconv.ParseFloat(c.Query("minProbability"), 64)
	sortOrder := strings.TrimSpace(c.Query("sort"))
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 0 {
		page = 0
	}
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	if pageSize <= 0 {
		pageSize = 100
	}

	rows, total, err := s.db.ListInferences(store.InferenceQuery{
		Query:          query,
		Country:        countryFilter,
		MinProbability: minProbability,
		Sort:           sortOrder,
		Offset:         page * pageSize,
		Limit:          pageSize,
	})
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]InferenceDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, FromModel(row))
	}
	c.JSON(http.StatusOK, ResultsResponse{Items: dtos, Total: total})
}

func (s *Server) handleCountries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	counts, err := s.db.CountryCounts(limit)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]CountryCountDTO, 0, len(counts))
	for _, row := range counts {
		dtos = append(dtos, CountryCountDTO{Country: row.Country, Total: row.Total})
	}
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) handleExportCSV(c *gin.Context) {
	rows, _, err := s.db.ListInferences(store.InferenceQuery{Limit: -1})
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=geoprovenance-export.csv")
	c.Header("Content-Type", "text/csv")

	writer := csv.NewWriter(c.Writer)
	headers := []string{"domain", "url", "country", "probability", "distribution", "created_at"}
	if err := writer.Write(headers); err != nil {
		return
	}
	for _, row := range rows {
		dto := FromModel(row)
		parts := make([]string, 0, len(dto.Distribution))
		for _, entry := range dto.Distribution {
			parts = append(parts, fmt.Sprintf("%s:%.4f", entry.Country, entry.Probability))
		}
		line := []string{
			dto.Domain,
			dto.URL,
			dto.Country,
			fmt.Sprintf("%.4f", dto.Probability),
			strings.Join(parts, "|"),
			dto.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(line); err != nil {
			return
		}
	}
	writer.Flush()
}

func (s *Server) handleExportJSON(c *gin.Context) {
	rows, _, err := s.db.ListInferences(store.InferenceQuery{Limit: -1})
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]InferenceDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, FromModel(row))
	}
	c.Header("Content-Disposition", "attachment; filename=geoprovenance-export.json")
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
