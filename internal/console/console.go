// Package console plays a round over plain line-oriented input and output.
// It suits pipes and terminals without cursor control.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/round"
)

// Game drives a round.Controller from text input.
type Game struct {
	ctrl *round.Controller
	in   io.Reader
	out  io.Writer
	log  *zap.Logger
}

// New returns a Game reading answers from in and writing to out.
func New(ctrl *round.Controller, in io.Reader, out io.Writer, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{ctrl: ctrl, in: in, out: out, log: log}
}

// Run plays one round. It returns when the round completes, the player
// quits, input ends, or ctx is cancelled; the last three finish the round
// early. The returned summary covers whatever was answered.
func (g *Game) Run(ctx context.Context) (round.Summary, error) {
	if err := g.ctrl.Start(); err != nil {
		return round.Summary{}, err
	}

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(g.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()

	g.printBanner()
	for !g.ctrl.Complete() {
		g.printQuestion()
		fmt.Fprintf(g.out, "\n%s", g.prompt())

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			g.log.Debug("input wait cancelled", zap.Error(ctx.Err()))
			fmt.Fprintln(g.out)
			return g.quit(), nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(g.out)
			return g.quit(), nil
		}

		if err := g.handle(strings.TrimSpace(line)); err != nil {
			if errors.Is(err, errQuit) {
				return g.quit(), nil
			}
			return g.ctrl.Finish(), err
		}
	}

	s := g.ctrl.Summary()
	g.printSummary(s)
	return s, nil
}

var errQuit = errors.New("quit")

func (g *Game) handle(input string) error {
	switch strings.ToLower(input) {
	case "q":
		return errQuit
	case "s":
		if g.ctrl.Config().AllowSkip {
			if err := g.ctrl.Skip(); err != nil {
				return err
			}
			fmt.Fprint(g.out, "⏭  ข้ามคำนี้\n\n")
			return nil
		}
	}

	q := g.ctrl.Question()
	n, err := strconv.Atoi(input)
	if err != nil {
		g.printInvalid()
		return nil
	}
	res, err := g.ctrl.SubmitAnswer(n - 1)
	var invalid *round.InvalidInputError
	if errors.As(err, &invalid) {
		g.printInvalid()
		return nil
	}
	if err != nil {
		return err
	}

	if res.Correct {
		fmt.Fprintln(g.out, "✅ ถูกต้อง! เก่งมาก")
		if res.Streak >= 3 {
			fmt.Fprintf(g.out, "🔥 ติดกัน %d ข้อ!\n", res.Streak)
		}
		fmt.Fprintln(g.out)
	} else {
		fmt.Fprintln(g.out, "❌ ยังไม่ถูกนะ")
		fmt.Fprintf(g.out, "คำตอบที่ถูกคือ: %s → %s\n", q.TargetWord, res.CorrectAnswer)
		if q.Definition != "" {
			fmt.Fprintf(g.out, "ความหมายอังกฤษ: %s\n", q.Definition)
		}
		fmt.Fprintln(g.out)
	}

	if res.Complete {
		return nil
	}
	return g.ctrl.Next()
}

func (g *Game) quit() round.Summary {
	fmt.Fprintln(g.out, "\nออกจากเกมแล้ว ขอบคุณที่เล่นครับ 🙌")
	s := g.ctrl.Finish()
	g.printSummary(s)
	return s
}

func (g *Game) prompt() string {
	n := len(g.ctrl.Question().Options)
	if g.ctrl.Config().AllowSkip {
		return fmt.Sprintf("คำตอบของคุณ (1-%d, s เพื่อข้าม หรือ q เพื่อออก): ", n)
	}
	return fmt.Sprintf("คำตอบของคุณ (1-%d หรือ q เพื่อออก): ", n)
}

func (g *Game) printInvalid() {
	n := len(g.ctrl.Question().Options)
	fmt.Fprintf(g.out, "กรุณากรอกหมายเลข 1-%d หรือ q เพื่อออก\n\n", n)
}

func (g *Game) printBanner() {
	fmt.Fprintln(g.out, "===========================================")
	fmt.Fprintln(g.out, "   Oxford 5000 B1–C1 Flashcard (CLI)   ")
	fmt.Fprintln(g.out, "===========================================")
	fmt.Fprintln(g.out, "โหมด: อังกฤษ → ไทย (multiple choice)")
	fmt.Fprintln(g.out, "พิมพ์หมายเลขคำตอบ หรือพิมพ์ q เพื่อออกจากเกม")
	fmt.Fprintln(g.out)
}

func (g *Game) printQuestion() {
	st := g.ctrl.State()
	q := g.ctrl.Question()
	fmt.Fprintf(g.out, "คำถามที่ %d/%d\n", st.Asked+1, g.ctrl.Config().RoundLength)
	if q.PartOfSpeech != "" {
		fmt.Fprintf(g.out, "คำศัพท์: %s (%s, ระดับ %s)\n\n", q.TargetWord, q.PartOfSpeech, q.Level)
	} else {
		fmt.Fprintf(g.out, "คำศัพท์: %s (ระดับ %s)\n\n", q.TargetWord, q.Level)
	}
	for i, opt := range q.Options {
		fmt.Fprintf(g.out, "  %d. %s\n", i+1, opt)
	}
}

// printSummary writes the end-of-round report; rounds with nothing
// answered get none.
func (g *Game) printSummary(s round.Summary) {
	if !s.Played {
		return
	}
	fmt.Fprintln(g.out, "======================")
	fmt.Fprintln(g.out, "   สรุปผลการเล่น   ")
	fmt.Fprintln(g.out, "======================")
	fmt.Fprintf(g.out, "ตอบถูก: %d / %d\n", s.Score, s.Asked)
	fmt.Fprintf(g.out, "คิดเป็น: %d%%\n", s.Accuracy)
	if s.BestStreak >= 2 {
		fmt.Fprintf(g.out, "สถิติติดกันสูงสุด: %d\n", s.BestStreak)
	}
	fmt.Fprintln(g.out, s.Outcome.Label)
}
