// Package main provides a script to run tests and check coverage.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func main() {
	args := os.Args[1:]
	testArgs, cfg := parseFlags(args)

	if cfg.isCoverageRun() {
		testArgs = setupCoverage(testArgs, cfg)
	}

	// Run tests
	if _, err := exec.LookPath("gotestsum"); err == nil && !cfg.isCoverageRun() {
		runCommand("gotestsum", append([]string{"--"}, testArgs...))
	} else {
		runCommand("go", append([]string{"test"}, testArgs...))
	}

	if cfg.checkCoverage {
		showCoverage(cfg.coverageFile)
	}
}

type testerConfig struct {
	checkCoverage bool
	coverageFile  string
}

func (c *testerConfig) isCoverageRun() bool {
	return c.checkCoverage
}

func parseFlags(args []string) ([]string, *testerConfig) {
	var testArgs []string
	cfg := &testerConfig{}

	for _, arg := range args {
		switch {
		case arg == "--coverage":
			cfg.checkCoverage = true
		case strings.HasPrefix(arg, "-coverprofile="):
			cfg.coverageFile = strings.TrimPrefix(arg, "-coverprofile=")
			testArgs = append(testArgs, arg)
		default:
			testArgs = append(testArgs, arg)
		}
	}
	return testArgs, cfg
}

func setupCoverage(testArgs []string, cfg *testerConfig) []string {
	if cfg.coverageFile == "" {
		cfg.coverageFile = "coverage.out"
		testArgs = append(testArgs, "-coverprofile="+cfg.coverageFile)
	}
	hasCoverPkg := false
	for _, arg := range testArgs {
		if strings.HasPrefix(arg, "-coverpkg") {
			hasCoverPkg = true
			break
		}
	}
	if !hasCoverPkg {
		testArgs = append(testArgs, "-coverpkg=./internal/...")
	}
	return testArgs
}

func runCommand(name string, args []string) {
	cmd := exec.CommandContext(context.Background(), name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Command failed: %v\n", err)
		os.Exit(1)
	}
}

func showCoverage(coverageFile string) {
	cmd := exec.CommandContext(context.Background(), "go", "tool", "cover", "-func", coverageFile)
	output, err := cmd.Output()
	if err != nil {
		fmt.Printf("❌ Error running go tool cover: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "total:") {
			fmt.Printf("\n📊 %s\n", line)
		}
	}
}
