package controllers

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/DedS3t/monopoly-simulator/app/models"
	"github.com/DedS3t/monopoly-simulator/platform/board"
	"github.com/DedS3t/monopoly-simulator/platform/config"
	"github.com/DedS3t/monopoly-simulator/platform/game"
	"github.com/DedS3t/monopoly-simulator/platform/logging"
	"github.com/DedS3t/monopoly-simulator/platform/simulation"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// StatsStore keeps running totals across requests.
type StatsStore interface {
	RecordMatch(r game.Result) error
	RecordSummary(s simulation.Summary) error
	Totals() (models.StatsResponse, error)
	Reset() error
}

// HistoryStore keeps individual match and batch records.
type HistoryStore interface {
	SaveMatch(id string, seed int64, r game.Result) error
	SaveBatch(id string, s simulation.Summary) error
	ListMatches(limit int) ([]models.MatchRecord, error)
	ListBatches(limit int) ([]models.BatchRecord, error)
}

// Handler serves the simulation endpoints. Stats and History are optional.
type Handler struct {
	Config  config.Config
	Stats   StatsStore
	History HistoryStore
	Log     *logrus.Entry
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{Config: cfg, Log: logrus.NewEntry(logrus.StandardLogger())}
}

func (h *Handler) SimulateGame(c *fiber.Ctx) error {
	seed, err := parseSeed(c)
	if err != nil {
		return err
	}
	id := uuid.NewV4().String()

	opts := []game.Option{game.WithSeed(seed)}
	if h.Config.LogMatches {
		opts = append(opts,
			game.WithListener(logging.NewEventLogger(h.Log.WithField("match", id))),
			game.WithStatusEvery(h.Config.StatusEvery),
		)
	}
	res := game.NewMatch(opts...).Run()

	h.Log.WithFields(logrus.Fields{
		"match":   id,
		"seed":    seed,
		"winner":  res.WinnerName(),
		"turns":   res.Turns,
		"timeout": res.Timeout,
	}).Info("simulated match")

	if h.Stats != nil {
		if err := h.Stats.RecordMatch(res); err != nil {
			h.Log.WithError(err).Warn("failed recording match stats")
		}
	}
	if h.History != nil {
		if err := h.History.SaveMatch(id, seed, res); err != nil {
			h.Log.WithError(err).Warn("failed saving match history")
		}
	}

	return c.JSON(MatchResponse(id, seed, res))
}

func (h *Handler) SimulateMultiple(c *fiber.Ctx) error {
	n := h.Config.DefaultSimulations
	if raw := c.Query("simulations"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "simulations must be an integer")
		}
		n = v
	}
	if n > h.Config.MaxSimulations {
		return fiber.NewError(fiber.StatusBadRequest, "simulations must be at most "+strconv.Itoa(h.Config.MaxSimulations))
	}
	seed, err := parseSeed(c)
	if err != nil {
		return err
	}

	summary, err := simulation.Run(n, simulation.Options{Workers: h.Config.Workers, Seed: seed})
	if errors.Is(err, simulation.ErrInvalidCount) {
		return fiber.NewError(fiber.StatusBadRequest, "simulations must be a positive integer")
	}
	if err != nil {
		return err
	}
	id := uuid.NewV4().String()

	h.Log.WithFields(logrus.Fields{
		"batch":       id,
		"seed":        summary.Seed,
		"simulations": summary.Total,
		"timeouts":    summary.TimeoutCount,
	}).Info("simulated batch")

	if h.Stats != nil {
		if err := h.Stats.RecordSummary(summary); err != nil {
			h.Log.WithError(err).Warn("failed recording batch stats")
		}
	}
	if h.History != nil {
		if err := h.History.SaveBatch(id, summary); err != nil {
			h.Log.WithError(err).Warn("failed saving batch history")
		}
	}

	return c.JSON(SimulationsResponse(id, summary))
}

func (h *Handler) GetBoard(c *fiber.Ctx) error {
	return c.JSON(board.LoadProperties())
}

// GetProperty looks a property up by board position or by name.
func (h *Handler) GetProperty(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed property key")
	}
	var prop models.Property
	if pos, convErr := strconv.Atoi(key); convErr == nil {
		prop, err = board.GetByPos(pos)
	} else {
		prop, err = board.GetByName(key)
	}
	if errors.Is(err, board.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "no property "+strconv.Quote(key))
	}
	if err != nil {
		return err
	}
	return c.JSON(prop)
}

func (h *Handler) GetStats(c *fiber.Ctx) error {
	if h.Stats == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "stats storage is not configured")
	}
	stats, err := h.Stats.Totals()
	if err != nil {
		h.Log.WithError(err).Error("failed reading stats")
		return fiber.NewError(fiber.StatusServiceUnavailable, "stats storage is unavailable")
	}
	return c.JSON(stats)
}

// MatchResponse shapes a finished match for the API.
func MatchResponse(id string, seed int64, res game.Result) models.MatchResponse {
	var winner *string
	if res.Winner != nil {
		name := res.Winner.Name
		winner = &name
	}
	return models.MatchResponse{
		Id:             id,
		Seed:           seed,
		Winner:         winner,
		TotalTurns:     res.Turns,
		Timeout:        res.Timeout,
		Players:        res.Players,
		FinalStandings: res.Standings(),
	}
}

// SimulationsResponse shapes a batch summary for the API, rounding to two
// decimal places.
func SimulationsResponse(id string, s simulation.Summary) models.SimulationsResponse {
	pct := make(map[string]float64, len(s.Wins))
	for name, p := range s.WinPercentages() {
		pct[name] = p.Round(2).InexactFloat64()
	}
	return models.SimulationsResponse{
		Id:               id,
		Seed:             s.Seed,
		TotalSimulations: s.Total,
		WinsByBehavior:   s.Wins,
		WinPercentages:   pct,
		AverageTurns:     s.AverageTurns().Round(2).InexactFloat64(),
		TimeoutCount:     s.TimeoutCount,
		NoWinnerCount:    s.NoWinnerCount,
	}
}

func parseSeed(c *fiber.Ctx) (int64, error) {
	raw := c.Query("seed")
	if raw == "" {
		return time.Now().UnixNano(), nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seed == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "seed must be a non-zero integer")
	}
	return seed, nil
}
