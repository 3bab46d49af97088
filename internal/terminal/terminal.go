package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Terminal is the console transport of the game: it renders the board and
// collects all human input. Reader and writer are injected so tests can run
// against buffers.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(reader io.Reader, writer io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// RenderBoard prints the grid. Empty cells show their 1-9 selection digit so
// the player can see what to type.
func (that *Terminal) RenderBoard(board entity.Board) {
	fmt.Fprintf(that.writer, "\n %s | %s | %s\n", cellLabel(board, 0), cellLabel(board, 1), cellLabel(board, 2))
	fmt.Fprintln(that.writer, "-----------")
	fmt.Fprintf(that.writer, " %s | %s | %s\n", cellLabel(board, 3), cellLabel(board, 4), cellLabel(board, 5))
	fmt.Fprintln(that.writer, "-----------")
	fmt.Fprintf(that.writer, " %s | %s | %s\n", cellLabel(board, 6), cellLabel(board, 7), cellLabel(board, 8))
}

// PromptGameType shows the startup menu and returns the kinds for X and O.
// Anything but 1-4 re-prompts.
func (that *Terminal) PromptGameType() (string, string, error) {
	fmt.Fprintln(that.writer, "Tic-tac-toe")
	fmt.Fprintln(that.writer)
	fmt.Fprintln(that.writer, "1) Human vs Human")
	fmt.Fprintln(that.writer, "2) Human vs Computer")
	fmt.Fprintln(that.writer, "3) Computer vs Human")
	fmt.Fprintln(that.writer, "4) Computer vs Computer")
	fmt.Fprintln(that.writer)

	for {
		fmt.Fprint(that.writer, "Game type [1, 2, 3, 4]: ")

		input, err := that.readLine()
		if err != nil {
			return "", "", fmt.Errorf("failed to read game type: %w", err)
		}

		switch input {
		case "1":
			return entity.KindHuman, entity.KindHuman, nil
		case "2":
			return entity.KindHuman, entity.KindComputer, nil
		case "3":
			return entity.KindComputer, entity.KindHuman, nil
		case "4":
			return entity.KindComputer, entity.KindComputer, nil
		default:
			fmt.Fprintln(that.writer, "\nPlease enter 1, 2, 3, or 4")
		}
	}
}

// PromptMove reads one move for the given player and returns the 0-based
// cell index. Invalid input re-prompts with a reason; a read failure aborts
// the game instead.
func (that *Terminal) PromptMove(game *entity.Game, player *entity.Player) (int, error) {
	for {
		fmt.Fprintf(that.writer, "\n%s's turn, enter a number [1-9]: ", player.Mark)

		input, err := that.readLine()
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		number, err := strconv.Atoi(input)
		if err != nil || number < 1 || number > 9 {
			fmt.Fprintln(that.writer, "Please enter a number between 1 and 9.")
			continue
		}

		cell := number - 1
		if game.Board.Cell(cell) != entity.EmptyCell {
			fmt.Fprintf(that.writer, "Cell %d is already occupied.\n", number)
			continue
		}

		return cell, nil
	}
}

// ShowResult prints the final line: the winner's mark or a draw.
func (that *Terminal) ShowResult(result string) {
	if result == entity.PlayerTie {
		fmt.Fprintln(that.writer, "\nGame over. Draw.")
		return
	}

	fmt.Fprintf(that.writer, "\nGame over! %s wins.\n", result)
}

func (that *Terminal) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	line = strings.TrimSpace(line)

	// A final line without a trailing newline is still a line.
	if err != nil && line == "" {
		return "", err
	}

	return line, nil
}

func cellLabel(board entity.Board, index int) string {
	if board.Cell(index) == entity.EmptyCell {
		return strconv.Itoa(index + 1)
	}

	return board.Cell(index)
}
