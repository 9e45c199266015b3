// Package eggs matches the expression typed before '=' against the easter egg
// and game activation codes of the calculator.
package eggs

// Page is one two-line screen held for HoldMs milliseconds.
type Page struct {
	Line1  string
	Line2  string
	HoldMs uint32
}

// Game identifies a game activation code.
type Game uint8

const (
	GameNone Game = iota
	GameSnake
	GameGuess
	GameQuiz
	GameReaction
	GameMemory
	GamePong
)

func (g Game) String() string {
	switch g {
	case GameSnake:
		return "snake"
	case GameGuess:
		return "guess"
	case GameQuiz:
		return "quiz"
	case GameReaction:
		return "reaction"
	case GameMemory:
		return "memory"
	case GamePong:
		return "pong"
	default:
		return "none"
	}
}

var activations = map[string]Game{
	"5318008": GameSnake,
	"7734":    GameQuiz,
	"5373":    GameGuess,
	"9009":    GamePong,
	"1234":    GameReaction,
	"4321":    GameMemory,
}

var banners = map[Game]Page{
	GameSnake:    {"  SNAKE GAME", " Use A B C D", 2000},
	GameGuess:    {" GUESS NUMBER", "   1 to 100", 2000},
	GameQuiz:     {"  MATH QUIZ", "  Get ready!", 2000},
	GameReaction: {" REACTION TEST", "Press * when GO", 2000},
	GameMemory:   {"  MEMORY GAME", "  Simon Says", 2000},
	GamePong:     {"    PONG", " Press A to hit", 2000},
}

var piPage = Page{"Pi = 3.14159265", "35897932384626", 2000}

var easterEggs = map[string][]Page{
	"42": {
		{"The Answer to", "Life, Universe", 2000},
		{"and Everything", "is 42", 3000},
	},
	"1337": {
		{"  1337 M0D3", "  4C7IV473D!", 2000},
		{"  H4CK 7H3", "  PL4N37!", 2000},
	},
	"404": {
		{"  ERROR 404", " Result not found", 2000},
		{"Have you tried", "turning it off?", 2000},
	},
	"314159": piScroll(),
	"31415":  piScroll(),
	"8008135": {
		{"  8008135", "Classic! :)", 2000},
		{"Turn calculator", "upside down!", 2000},
	},
	"73": {
		{"  73 de M0XWI", "  73 de M0LSC", 2000},
		{"Best regards!", "Keep calm & QSO", 2000},
	},
}

// piScroll shows the digits and then scrolls both lines left three times.
func piScroll() []Page {
	pages := []Page{piPage}
	for i := 1; i <= 3; i++ {
		p := Page{Line1: shiftLeft(piPage.Line1, i), Line2: shiftLeft(piPage.Line2, i), HoldMs: 300}
		if i == 3 {
			p.HoldMs = 2000
		}
		pages = append(pages, p)
	}
	return pages
}

func shiftLeft(s string, n int) string {
	if n >= len(s) {
		return ""
	}
	return s[n:]
}

// EasterEgg returns the pages shown for expr, if it is an easter egg code.
func EasterEgg(expr string) ([]Page, bool) {
	pages, ok := easterEggs[expr]
	if !ok {
		return nil, false
	}
	return append([]Page(nil), pages...), true
}

// Activation returns the game started by expr, or GameNone.
func Activation(expr string) Game {
	return activations[expr]
}

// Banner returns the title page of a game.
func Banner(g Game) (Page, bool) {
	p, ok := banners[g]
	return p, ok
}
