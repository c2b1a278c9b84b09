// checkersplay-term is a terminal shell for the checkers engine. It plays
// the same rules as the GUI: moves are entered as "b6 a5", captures are
// mandatory, and the computer side uses the tiered selector.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"checkersplay/internal/ai"
	"checkersplay/internal/board"
	"checkersplay/internal/game"
)

var (
	mode       = flag.String("mode", "computer", "game mode: hotseat or computer")
	difficulty = flag.String("difficulty", "medium", "computer difficulty: easy, medium or hard")
	seed       = flag.Int64("seed", 0, "random seed for the computer (0 = time-based)")
)

func main() {
	flag.Parse()

	vsComputer := false
	switch *mode {
	case "hotseat":
	case "computer":
		vsComputer = true
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	diff, err := parseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	selector := ai.NewSelector(diff, rng)

	eng := game.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("CheckersPlay. Red moves up the board; captures are mandatory.")
	fmt.Println("Enter moves as \"b6 a5\". Commands: moves, board, quit.")

	for {
		printBoard(eng)

		if eng.Phase() == game.GameOver {
			if winner, ok := eng.Winner(); ok {
				fmt.Printf("%s wins!\n", winner)
			}
			return
		}

		if vsComputer && eng.CurrentTurn() == board.Black {
			computerMove(eng, selector)
			continue
		}

		if !humanMove(eng, scanner) {
			return
		}
	}
}

func parseDifficulty(s string) (ai.Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return ai.Easy, nil
	case "medium":
		return ai.Medium, nil
	case "hard":
		return ai.Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// printBoard prints the position and whose move it is.
func printBoard(eng *game.Engine) {
	b := eng.Board()
	fmt.Print("\n" + b.String())

	if eng.Phase() == game.GameOver {
		return
	}

	fmt.Printf("%s to move", eng.CurrentTurn())
	if cont, ok := eng.ContinuationCell(); ok {
		fmt.Printf(" (must continue jumping from %s)", cont)
	} else if eng.LegalMoves().HasCapture() {
		fmt.Print(" (capture available, jumps are mandatory)")
	}
	fmt.Println()
}

// humanMove reads and applies one move. Returns false on EOF or quit.
func humanMove(eng *game.Engine, scanner *bufio.Scanner) bool {
	fmt.Print("> ")
	if !scanner.Scan() {
		return false
	}

	line := strings.TrimSpace(scanner.Text())
	switch line {
	case "":
		return true
	case "quit", "exit":
		return false
	case "board":
		return true
	case "moves":
		printMoves(eng)
		return true
	}

	from, to, err := parseMove(line)
	if err != nil {
		fmt.Println(err)
		return true
	}

	if !eng.TryMove(from, to) {
		fmt.Printf("illegal move %s %s (type \"moves\" to list legal moves)\n", from, to)
	}
	return true
}

// parseMove parses "b6 a5" or "b6-a5" into a source and destination.
func parseMove(line string) (board.Cell, board.Cell, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '-' || r == 'x'
	})
	if len(fields) != 2 {
		return board.NoCell, board.NoCell, fmt.Errorf("cannot parse move %q", line)
	}

	from, err := board.ParseCell(fields[0])
	if err != nil {
		return board.NoCell, board.NoCell, err
	}
	to, err := board.ParseCell(fields[1])
	if err != nil {
		return board.NoCell, board.NoCell, err
	}
	return from, to, nil
}

// printMoves lists the legal moves for the side to move.
func printMoves(eng *game.Engine) {
	legal := eng.LegalMoves()
	for from, dests := range legal {
		for to, captures := range dests {
			if len(captures) > 0 {
				fmt.Printf("  %sx%s\n", from, to)
			} else {
				fmt.Printf("  %s-%s\n", from, to)
			}
		}
	}
}

// computerMove picks and applies one step for Black, pausing briefly so the
// reply does not appear instant.
func computerMove(eng *game.Engine, selector *ai.Selector) {
	time.Sleep(500 * time.Millisecond)

	b := eng.Board()
	from, to, ok := selector.Choose(&b, eng.LegalMoves())
	if !ok {
		return
	}
	if !eng.TryMove(from, to) {
		log.Fatalf("computer chose illegal move %s %s", from, to)
	}

	if mv, hadLast := eng.LastMove(); hadLast {
		fmt.Printf("Computer plays %s\n", mv)
	}
}
