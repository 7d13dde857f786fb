// Package main provides the backprop CLI.
//
// Usage:
//
//	backprop version
//	backprop train [-steps 50] [-lr 0.3] [-target 0.5] [-every 5] [-plot loss.png]
//	               [-save neuron.safetensors] [-resume neuron.safetensors]
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	flagSteps    = flag.Int("steps", 50, "Number of gradient descent steps.")
	flagLR       = flag.Float64("lr", 0.3, "Learning rate.")
	flagMomentum = flag.Float64("momentum", 0, "SGD momentum, in [0, 1).")
	flagTarget   = flag.Float64("target", 0.5, "Desired output of the neuron.")
	flagEvery    = flag.Int("every", 5, "Report the loss in the table every this many steps. 0 reports only the first and last.")
	flagProgress = flag.Bool("progress", true, "Display a progress bar while training.")
	flagPlot     = flag.String("plot", "", "If set, save a PNG plot of the loss curve to this path.")
	flagSave     = flag.String("save", "", "If set, save the trained weights and bias as SafeTensors to this path.")
	flagResume   = flag.String("resume", "", "If set, start from the weights and bias saved at this path.")
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "backprop %s - reverse-mode automatic differentiation\n\n", version)
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  version    Show version")
	_, _ = fmt.Fprintln(out, "  train      Train a logistic neuron with gradient descent")
	_, _ = fmt.Fprintln(out, "\nFlags (train):")
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'backprop -help'.", flag.Args())
		os.Exit(2)
	}

	switch command {
	case "version":
		fmt.Printf("backprop %s\n", version)
	case "train":
		if err := runTrain(); err != nil {
			klog.Errorf("train: %+v", err)
			klog.Flush()
			os.Exit(1)
		}
	case "-h", "-help", "--help", "help":
		usage()
	default:
		klog.Errorf("Unknown command %q. See 'backprop -help'.", command)
		os.Exit(2)
	}
	klog.Flush()
}
