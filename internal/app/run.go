package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"buddybot/internal/wellness"
)

// Run reads console input until EOF or the context is canceled. Plain input
// is a question for the bot; lines starting with "/" are commands. Command
// failures print a readable sentence and the loop keeps going.
func (a *App) Run(ctx context.Context) error {
	a.info.Println("WeightLossBuddy is ready. Ask a question or type /help for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		select {
		case <-ctx.Done():
			a.info.Println("Bye! Keep up the good work.")
			return nil
		default:
			fmt.Print("> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				return nil
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "/") {
				if quit := a.handleCommand(ctx, line); quit {
					a.info.Println("Bye! Keep up the good work.")
					return nil
				}
				continue
			}

			a.handleQuestion(ctx, line)
		}
	}
}

// handleQuestion answers one question. The embed timeout bounds the whole
// exchange so a stalled embedding provider cannot freeze the loop.
func (a *App) handleQuestion(ctx context.Context, question string) {
	askCtx, cancel := context.WithTimeout(ctx, a.cfg.EmbedTimeout)
	defer cancel()

	a.history = a.engine.Ask(askCtx, question, a.history)
	a.bot.Println(a.history[len(a.history)-1].Answer)
}

// handleCommand dispatches a slash command. It returns true when the user
// asked to quit.
func (a *App) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		a.printHelp()
	case "/add":
		a.cmdAdd(ctx, strings.TrimSpace(strings.TrimPrefix(line, fields[0])))
	case "/list":
		a.cmdList()
	case "/clear":
		a.cmdClear()
	case "/bmi":
		a.cmdBMI(args)
	case "/plan":
		a.cmdPlan(args)
	case "/meal":
		a.cmdMeal(args)
	case "/summary":
		a.cmdSummary()
	case "/resetcal":
		a.cmdResetCalories()
	case "/workout":
		a.cmdWorkout(args)
	case "/quote":
		a.cmdQuote()
	case "/remind":
		a.bot.Println(a.boosts.Reminder())
	case "/praise":
		a.bot.Println(a.boosts.Praise())
	case "/recipe":
		a.cmdRecipe(args)
	case "/cope":
		a.bot.Println(wellness.CopingStrategies())
	case "/tips":
		a.bot.Println(wellness.MentalWellnessTips())
	default:
		a.warn.Printf("Unknown command %s. Type /help for the list of commands.\n", cmd)
	}
	return false
}

func (a *App) printHelp() {
	a.info.Println(`Commands:
  /add <path>                       add a document to the knowledge base
  /list                             list knowledge base documents
  /clear                            remove all documents
  /bmi <height-cm> <weight-kg>      calculate your BMI
  /plan <goal> [diet]               one-day meal plan (diet: keto, mediterranean)
  /meal <name> [calories]           log a meal
  /summary                          today's calorie summary
  /resetcal                         reset today's calorie log
  /workout <level> <min> <place>    workout suggestion (beginner/intermediate, home/gym)
  /quote  /remind  /praise          motivational boosts
  /recipe [max-calories] [diet]     recipe suggestion
  /cope  /tips                      coping strategies and wellness tips
  /quit                             exit
Anything else is a question for WeightLossBuddy.`)
}
