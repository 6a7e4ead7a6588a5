package logic

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"strombreaker-backend/internal/common"
	"strombreaker-backend/internal/config"
	"strombreaker-backend/internal/db"
)

// Server holds the dispatcher's collaborators. One instance serves all
// requests; there is no package-level state.
type Server struct {
	store *db.Store
	ai    *Collaborator
	cfg   *config.Config
	log   *zap.Logger
}

// NewServer wires the dispatcher. ai may be nil when the rule-based
// strategy is configured.
func NewServer(store *db.Store, ai *Collaborator, cfg *config.Config, log *zap.Logger) *Server {
	return &Server{store: store, ai: ai, cfg: cfg, log: log}
}

// SetupRouter registers every endpoint.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": common.APIBanner})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/api/users", s.CreateUserHandler)
	r.POST("/api/chat", s.ChatHandler)
	r.GET("/api/chat/history", s.ChatHistoryHandler)
	r.POST("/api/mood", s.MoodHandler)
	r.POST("/api/activities", s.ActivityHandler)
	r.GET("/api/dashboard/:user_id", s.DashboardHandler)
	r.GET("/api/meditation/:duration", s.MeditationHandler)
	r.GET("/api/journaling-prompts", s.JournalingPromptsHandler)

	if s.cfg.StaticDir != "" {
		r.Static("/static", s.cfg.StaticDir)
	}

	return r
}

func (s *Server) delegated() bool {
	return s.cfg.Strategy == config.StrategyDelegated && s.ai != nil
}

// CreateUserHandler registers a user.
func (s *Server) CreateUserHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Email == "" {
		c.JSON(400, gin.H{"error": "username and email required"})
		return
	}
	user, err := s.store.CreateUser(req.Username, req.Email)
	if err == db.ErrDuplicateUser {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Error("create user failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, user)
}

// ChatHandler classifies the message, composes a reply per the configured
// strategy, persists the exchange, and returns the payload.
func (s *Server) ChatHandler(c *gin.Context) {
	var req struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Message == "" {
		c.JSON(400, gin.H{"error": "user_id and message required"})
		return
	}
	user, err := s.lookupUser(c, req.UserID)
	if err != nil {
		return
	}

	var result ChatResult
	if s.delegated() {
		ctx := c.Request.Context()
		score, label := s.ai.AnalyzeMood(ctx, req.Message)
		history, err := s.store.Turns(user.ID, 10)
		if err != nil {
			s.log.Warn("loading chat history failed", zap.Error(err))
			history = nil
		}
		reply, err := s.ai.GenerateReply(ctx, req.Message, score, label, history)
		if err != nil {
			s.log.Warn("reply generation failed, using default reply", zap.Error(err))
			result = ChatResult{
				Reply:      common.DefaultReply,
				MoodScore:  score,
				MoodLabel:  label,
				Activities: []string{},
			}
		} else {
			result = ChatResult{
				Reply:      reply,
				MoodScore:  score,
				MoodLabel:  label,
				Activities: SuggestActivities(score),
			}
		}
	} else {
		result = ComposeRules(req.Message)
	}

	if err := s.store.RecordTurn(user.ID, req.Message, result.Reply, result.MoodScore); err != nil {
		s.log.Error("recording turn failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if err := s.store.RecordMood(user.ID, result.MoodScore, result.MoodLabel, ""); err != nil {
		s.log.Error("recording mood failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	c.JSON(200, gin.H{
		"response":             result.Reply,
		"mood_score":           result.MoodScore,
		"mood_label":           result.MoodLabel,
		"suggested_activities": result.Activities,
	})
}

// ChatHistoryHandler returns the user's recent turns, oldest first.
func (s *Server) ChatHistoryHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(400, gin.H{"error": "user_id required"})
		return
	}
	user, err := s.lookupUser(c, userID)
	if err != nil {
		return
	}
	turns, err := s.store.Turns(user.ID, 50)
	if err != nil {
		s.log.Error("loading chat history failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"records": turns})
}

// MoodHandler logs an explicit mood entry.
func (s *Server) MoodHandler(c *gin.Context) {
	var req struct {
		UserID    string   `json:"user_id"`
		MoodScore *float64 `json:"mood_score"`
		MoodLabel string   `json:"mood_label"`
		Notes     string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.MoodScore == nil || req.MoodLabel == "" {
		c.JSON(400, gin.H{"error": "user_id, mood_score and mood_label required"})
		return
	}
	user, err := s.lookupUser(c, req.UserID)
	if err != nil {
		return
	}
	if err := s.store.RecordMood(user.ID, *req.MoodScore, req.MoodLabel, req.Notes); err != nil {
		s.log.Error("recording mood failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "Mood logged successfully"})
}

// ActivityHandler logs a completed wellness activity.
func (s *Server) ActivityHandler(c *gin.Context) {
	var req struct {
		UserID           string `json:"user_id"`
		ActivityType     string `json:"activity_type"`
		Duration         int    `json:"duration"`
		CompletionStatus string `json:"completion_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ActivityType == "" || req.CompletionStatus == "" {
		c.JSON(400, gin.H{"error": "user_id, activity_type and completion_status required"})
		return
	}
	user, err := s.lookupUser(c, req.UserID)
	if err != nil {
		return
	}
	if err := s.store.RecordActivity(user.ID, req.ActivityType, req.Duration, req.CompletionStatus); err != nil {
		s.log.Error("recording activity failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"message": "Activity logged successfully"})
}

// DashboardHandler aggregates the user's wellness data.
func (s *Server) DashboardHandler(c *gin.Context) {
	user, err := s.lookupUser(c, c.Param("user_id"))
	if err != nil {
		return
	}
	trend, err := s.store.MoodTrend(user.ID, 7)
	if err != nil {
		s.log.Error("loading mood trend failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	activities, err := s.store.RecentActivities(user.ID, 10)
	if err != nil {
		s.log.Error("loading activities failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	badges, err := s.store.Badges(user.ID)
	if err != nil {
		s.log.Error("loading badges failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	streak, err := s.store.Streak(user.ID)
	if err != nil {
		s.log.Error("counting streak failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{
		"user_id":           user.ID,
		"mood_trend":        trend,
		"recent_activities": activities,
		"badges_earned":     badges,
		"streak_count":      streak,
	})
}

// MeditationHandler returns a guided meditation script of the requested
// length. The delegated strategy generates one; otherwise, and on any
// generation failure, the fixed breathing script is served.
func (s *Server) MeditationHandler(c *gin.Context) {
	minutes, err := strconv.Atoi(c.Param("duration"))
	if err != nil || minutes <= 0 {
		c.JSON(400, gin.H{"error": "invalid duration"})
		return
	}
	script := common.FallbackMeditationScript
	if s.delegated() {
		generated, err := s.ai.MeditationScript(c.Request.Context(), minutes)
		if err != nil {
			s.log.Warn("meditation generation failed, using fallback script", zap.Error(err))
		} else {
			script = generated
		}
	}
	c.JSON(200, gin.H{
		"duration": minutes,
		"script":   script,
		"type":     "guided_meditation",
	})
}

// JournalingPromptsHandler returns 3 distinct prompts from the fixed pool.
func (s *Server) JournalingPromptsHandler(c *gin.Context) {
	c.JSON(200, gin.H{"prompts": SamplePrompts(3)})
}

// lookupUser resolves a user id and writes the error response itself when
// the lookup fails.
func (s *Server) lookupUser(c *gin.Context, id string) (*db.User, error) {
	if id == "" {
		c.JSON(400, gin.H{"error": "user_id required"})
		return nil, db.ErrUserNotFound
	}
	user, err := s.store.GetUser(id)
	if err == db.ErrUserNotFound {
		c.JSON(404, gin.H{"error": "user not found"})
		return nil, err
	}
	if err != nil {
		s.log.Error("user lookup failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return nil, err
	}
	return user, nil
}
