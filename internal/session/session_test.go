package session

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

func testDealer(t *testing.T) *Dealer {
	t.Helper()
	catalog, err := words.NewCatalog(map[string][]string{
		"astros": {"sol", "luna"},
		"frutas": {"pera", "kiwi"},
	})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return NewDealer(catalog, config.DefaultConfig(), 1)
}

// scriptedPlayer replays fixed answers and falls back to quitting.
type scriptedPlayer struct {
	choices []MenuChoice
	guesses []string
	acks    int
}

func (p *scriptedPlayer) Choose(Menu) MenuChoice {
	if len(p.choices) == 0 {
		return MenuChoice{Action: ActionQuit}
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c
}

func (p *scriptedPlayer) Guess(Round) string {
	if len(p.guesses) == 0 {
		return CommandQuit
	}
	g := p.guesses[0]
	p.guesses = p.guesses[1:]
	return g
}

func (p *scriptedPlayer) Acknowledge(Round) { p.acks++ }

type recordingRenderer struct {
	menus, rounds, overs int
	last                 Round
}

func (r *recordingRenderer) Menu(Menu) { r.menus++ }
func (r *recordingRenderer) Round(rd Round) {
	r.rounds++
	r.last = rd
}
func (r *recordingRenderer) RoundOver(rd Round, _ Summary) {
	r.overs++
	r.last = rd
}

func TestDealerDeal(t *testing.T) {
	d := testDealer(t)

	for i := 0; i < 20; i++ {
		r, err := d.Deal("astros", config.DifficultyHard)
		if err != nil {
			t.Fatalf("Deal() failed: %v", err)
		}
		if r.Category != "astros" {
			t.Fatalf("Category = %q, expected astros", r.Category)
		}
		if w := r.State.Secret(); w != "sol" && w != "luna" {
			t.Fatalf("Secret() = %q, not in category", w)
		}
		if r.State.MaxAttempts() != 4 {
			t.Fatalf("MaxAttempts() = %d, expected 4 for hard", r.State.MaxAttempts())
		}
	}

	r, err := d.Deal("", config.DifficultyEasy)
	if err != nil {
		t.Fatalf("Deal() failed: %v", err)
	}
	if !d.Catalog.Has(r.Category) {
		t.Errorf("random category %q not in catalog", r.Category)
	}
}

func TestRunnerAutoPlayerTerminates(t *testing.T) {
	rend := &recordingRenderer{}
	runner := &Runner{
		Dealer:     testDealer(t),
		Player:     NewAutoPlayer(5, ""),
		Renderer:   rend,
		Difficulty: config.DifficultyNormal,
	}

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.Played != 5 || summary.Won+summary.Lost != 5 {
		t.Errorf("Summary = %+v, expected 5 finished rounds", summary)
	}
	if summary.Abandoned != 0 {
		t.Errorf("auto player should never abandon, got %+v", summary)
	}
	if rend.overs != 5 {
		t.Errorf("RoundOver rendered %d times, expected 5", rend.overs)
	}
	// one menu per round plus the final one that quits
	if rend.menus != 6 {
		t.Errorf("Menu rendered %d times, expected 6", rend.menus)
	}
}

func TestRunnerScriptedSession(t *testing.T) {
	player := &scriptedPlayer{
		choices: []MenuChoice{
			{Action: ActionPlay, Category: "astros", Difficulty: config.DifficultyEasy},
			{Action: ActionPlay, Category: "astros"},
		},
		// first round: abandon; second round: quit from inside the round
		guesses: []string{"x", CommandMenu, CommandQuit},
	}
	rend := &recordingRenderer{}
	runner := &Runner{Dealer: testDealer(t), Player: player, Renderer: rend}

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.Played != 2 || summary.Abandoned != 2 {
		t.Errorf("Summary = %+v, expected 2 abandoned rounds", summary)
	}
	if player.acks != 0 || rend.overs != 0 {
		t.Error("abandoned rounds should not show the result screen")
	}
	if rend.last.Difficulty != config.DifficultyEasy {
		t.Errorf("difficulty change should stick across rounds, got %q", rend.last.Difficulty)
	}
	if len(player.choices) != 0 {
		t.Error("quit inside a round should end the session without another menu")
	}
}

func TestRunnerFirstChoiceSkipsMenu(t *testing.T) {
	rend := &recordingRenderer{}
	runner := &Runner{
		Dealer:   testDealer(t),
		Player:   &scriptedPlayer{guesses: []string{"pera", "kiwi"}},
		Renderer: rend,
		First:    &MenuChoice{Action: ActionPlay, Category: "frutas"},
	}

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.Won != 1 {
		t.Errorf("Summary = %+v, expected one won round", summary)
	}
	if rend.last.Category != "frutas" {
		t.Errorf("Category = %q, expected frutas", rend.last.Category)
	}
	// only the menu after the round is shown
	if rend.menus != 1 {
		t.Errorf("Menu rendered %d times, expected 1", rend.menus)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Dealer: testDealer(t), Player: NewAutoPlayer(1, ""), Renderer: &recordingRenderer{}}
	if _, err := runner.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestSummaryRecord(t *testing.T) {
	var s Summary
	for _, st := range []Status{StatusWon, StatusLost, StatusLost, StatusAbandoned, StatusQuit, StatusPlaying} {
		s.Record(st)
	}
	want := Summary{Played: 5, Won: 1, Lost: 2, Abandoned: 2}
	if s != want {
		t.Errorf("Summary = %+v, expected %+v", s, want)
	}
}
