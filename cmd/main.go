// Copyright (c) 2015 Lei CHEN (raistlic). All Rights Reserved

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"

	bitmap "github.com/raistlic/go-bitmap"

	"github.com/urfave/cli/v2"
)

func main() {
	matchFlag := &cli.StringFlag{
		Name:     "match",
		Aliases:  []string{"m"},
		Usage:    "regexp marking a line as a one bit",
		Required: true,
	}
	inputFlag := &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"in", "i"},
		Usage:   "file to read lines from (default is stdin)",
	}

	app := &cli.App{
		Name:  "bitmap",
		Usage: "rank/select queries over lines of text matching a pattern",
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "build a bit vector over the input and summarize it",
				Flags: []cli.Flag{matchFlag, inputFlag},
				Action: func(c *cli.Context) error {
					_, m, err := buildFromLines(c)
					if err != nil {
						return err
					}
					fmt.Printf("%d lines: %d matching, %d not matching\n",
						m.Size(), m.CountOnes(), m.CountZeros())
					blocks := m.Size()/8 + 1
					// bits plus the two per-block rank caches
					fmt.Printf("%s of bits, %s with rank caches\n",
						humanBytes(uint(blocks)), humanBytes(uint(blocks+2*blocks*8)))
					return nil
				},
			},
			{
				Name:      "rank",
				Usage:     "count matching lines up to a line index (inclusive)",
				ArgsUsage: "<index>",
				Flags:     []cli.Flag{matchFlag, inputFlag},
				Action: func(c *cli.Context) error {
					index, err := intArg(c, "index")
					if err != nil {
						return err
					}
					_, m, err := buildFromLines(c)
					if err != nil {
						return err
					}
					if index >= m.Size() {
						return fmt.Errorf("index %d out of range, input has %d lines", index, m.Size())
					}
					fmt.Printf("lines [0..%d]: %d matching, %d not matching\n",
						index, m.RankOne(index), m.RankZero(index))
					return nil
				},
			},
			{
				Name:      "select",
				Usage:     "locate the i-th matching line and print it",
				ArgsUsage: "<i>",
				Flags: []cli.Flag{
					matchFlag,
					inputFlag,
					&cli.BoolFlag{
						Name:    "zero",
						Aliases: []string{"z"},
						Usage:   "locate the i-th non-matching line instead",
					},
				},
				Action: func(c *cli.Context) error {
					i, err := intArg(c, "i")
					if err != nil {
						return err
					}
					lines, m, err := buildFromLines(c)
					if err != nil {
						return err
					}
					var index int
					if c.Bool("zero") {
						index = m.SelectZero(i)
					} else {
						index = m.SelectOne(i)
					}
					if index < 0 {
						fmt.Printf("no such line\n")
						return nil
					}
					fmt.Printf("%d: %s\n", index, lines[index])
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func intArg(c *cli.Context, name string) (int, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one argument: <%s>", name)
	}
	v, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, c.Args().First(), err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s cannot be negative, got %d", name, v)
	}
	return v, nil
}

func buildFromLines(c *cli.Context) ([]string, *bitmap.BitMap, error) {
	re, err := regexp.Compile(c.String("match"))
	if err != nil {
		return nil, nil, fmt.Errorf("bad match pattern: %w", err)
	}

	var reader io.Reader
	if c.IsSet("input") {
		f, err := os.Open(c.String("input"))
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return lines, bitmap.New(lines, re.MatchString), nil
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	}
	return fmt.Sprintf("%0.0f %s", v, suffix)
}
