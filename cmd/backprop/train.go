package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/born-ml/backprop/internal/train"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	rightAlignedStyle = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	normalStyle       = lipgloss.NewStyle().Padding(0, 1)
	titleStyle        = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

func newLossTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case col == 0:
				return rightAlignedStyle
			default:
				return normalStyle
			}
		}).
		Headers("Step", "Output", "Loss")
}

// reported reports whether step i of n goes into the table.
func reported(i, n, every int) bool {
	if i == 0 || i == n-1 {
		return true
	}
	return every > 0 && i%every == 0
}

func runTrain() error {
	config := train.DefaultConfig()
	config.Steps = *flagSteps
	config.LR = *flagLR
	config.Momentum = *flagMomentum
	config.Target = *flagTarget
	if *flagResume != "" {
		if err := loadCheckpoint(*flagResume, &config); err != nil {
			return err
		}
		klog.Infof("Resuming from %s", *flagResume)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var bar *progressbar.ProgressBar
	if *flagProgress {
		bar = progressbar.NewOptions(config.Steps,
			progressbar.OptionSetDescription("Training"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("steps"),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
		)
	}

	table := newLossTable()
	result, err := train.Run(ctx, config, func(s train.Step) {
		if bar != nil {
			_ = bar.Add(1)
		}
		if reported(s.Index, config.Steps, *flagEvery) {
			table.Row(humanize.Comma(int64(s.Index+1)), humanize.FtoaWithDigits(s.Output, 8), humanize.FtoaWithDigits(s.Loss, 10))
		}
	})
	if bar != nil {
		_ = bar.Finish()
		_, _ = fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Logistic neuron, %s steps, lr=%g, target=%g",
		humanize.Comma(int64(config.Steps)), config.LR, config.Target)))
	fmt.Println(table.Render())
	fmt.Printf("weights: %v\nbias:    %v\n", result.Weights.Data(), result.Bias.Data())

	if *flagPlot != "" {
		if err := plotLosses(result.Losses, *flagPlot); err != nil {
			return err
		}
		klog.Infof("Loss curve saved to %s", *flagPlot)
	}

	if *flagSave != "" {
		if err := saveCheckpoint(*flagSave, config, result); err != nil {
			return err
		}
		klog.Infof("Checkpoint saved to %s", *flagSave)
	}

	if i := result.FirstIncrease(); i >= 0 {
		return errors.Errorf("loss did not decrease at step %d: %g -> %g", i+1, result.Losses[i-1], result.Losses[i])
	}
	return nil
}
