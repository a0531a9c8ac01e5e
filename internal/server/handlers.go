package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/quizgen"
	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// questionView is a question as sent to clients. The answer is withheld;
// it arrives in the answer result.
type questionView struct {
	Word         string      `json:"word"`
	Definition   string      `json:"definition,omitempty"`
	Level        vocab.Level `json:"level"`
	PartOfSpeech string      `json:"pos,omitempty"`
	Options      []string    `json:"options"`
}

type roundView struct {
	ID          string             `json:"id"`
	Phase       string             `json:"phase"`
	RoundLength int                `json:"round_length"`
	AllowSkip   bool               `json:"allow_skip"`
	State       round.State        `json:"state"`
	Banner      round.StreakBanner `json:"streak_banner"`
	Question    *questionView      `json:"question,omitempty"`
	Result      *round.Result      `json:"result,omitempty"`
	Message     string             `json:"message,omitempty"`
	Summary     *round.Summary     `json:"summary,omitempty"`
}

type answerRequest struct {
	Index *int `json:"index"`
}

func viewQuestion(q *quizgen.Question) *questionView {
	if q == nil {
		return nil
	}
	return &questionView{
		Word:         q.TargetWord,
		Definition:   q.Definition,
		Level:        q.Level,
		PartOfSpeech: q.PartOfSpeech,
		Options:      q.Options,
	}
}

// view snapshots ctrl. The caller holds the session lock.
func view(ctrl *round.Controller) roundView {
	st := ctrl.State()
	v := roundView{
		ID:          ctrl.ID(),
		Phase:       st.Phase.String(),
		RoundLength: ctrl.Config().RoundLength,
		AllowSkip:   ctrl.Config().AllowSkip,
		State:       st,
		Banner:      round.BannerFor(st.Streak),
		Question:    viewQuestion(ctrl.Question()),
	}
	if ctrl.Complete() {
		s := ctrl.Summary()
		v.Summary = &s
		v.Question = nil
	}
	return v
}

func (s *Server) createRound(w http.ResponseWriter, r *http.Request) {
	ctrl, err := s.factory()
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if err := ctrl.Start(); err != nil {
		s.handleError(w, r, err)
		return
	}
	sess := s.rounds.add(ctrl)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.log.Debug("round created", zap.String("round_id", ctrl.ID()))
	respondJSON(w, http.StatusCreated, view(ctrl))
}

// withSession runs fn on the round named in the URL under its lock.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*round.Controller) (roundView, error)) {
	sess, err := s.rounds.get(chi.URLParam(r, "roundID"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	v, err := fn(sess.ctrl)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) getRound(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ctrl *round.Controller) (roundView, error) {
		return view(ctrl), nil
	})
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSONBody(r, &req); err != nil || req.Index == nil {
		s.handleError(w, r, errBadRequest)
		return
	}
	s.withSession(w, r, func(ctrl *round.Controller) (roundView, error) {
		res, err := ctrl.SubmitAnswer(*req.Index)
		if err != nil {
			return roundView{}, err
		}
		v := view(ctrl)
		v.Result = &res
		if res.Correct {
			v.Message = round.CorrectMessage(res.Streak)
		} else {
			v.Message = "❌ Answer: " + res.CorrectAnswer
		}
		if res.Milestone > 0 {
			v.Message = round.MilestoneMessage(res.Streak)
		}
		return v, nil
	})
}

func (s *Server) skip(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ctrl *round.Controller) (roundView, error) {
		if err := ctrl.Skip(); err != nil {
			return roundView{}, err
		}
		v := view(ctrl)
		v.Message = "Skipped"
		return v, nil
	})
}

func (s *Server) next(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ctrl *round.Controller) (roundView, error) {
		if err := ctrl.Next(); err != nil {
			return roundView{}, err
		}
		return view(ctrl), nil
	})
}

func (s *Server) finish(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ctrl *round.Controller) (roundView, error) {
		ctrl.Finish()
		return view(ctrl), nil
	})
}

type wordStats struct {
	Source  string         `json:"source"`
	Levels  []vocab.Level  `json:"levels"`
	Total   int            `json:"total"`
	ByLevel map[string]int `json:"by_level"`
}

func (s *Server) wordStats(w http.ResponseWriter, r *http.Request) {
	byLevel := make(map[string]int)
	for l, n := range s.words.CountByLevel() {
		byLevel[string(l)] = n
	}
	respondJSON(w, http.StatusOK, wordStats{
		Source:  s.words.Source(),
		Levels:  s.words.Levels().Sorted(),
		Total:   s.words.Len(),
		ByLevel: byLevel,
	})
}
