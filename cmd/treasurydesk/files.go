package main

import (
	"io"
	"os"
	"path/filepath"

	"treasurydesk/internal/app"
)

// openSinks opens the six fixed output files under dir for appending,
// creating any that are missing, and returns an app.Sinks plus a closer.
func openSinks(dir string) (app.Sinks, func(), error) {
	names := map[string]string{
		"positions":  "positions.txt",
		"risk":       "risk.txt",
		"executions": "executions.txt",
		"streaming":  "streaming.txt",
		"inquiries":  "allinquiries.txt",
		"gui":        "gui.txt",
	}
	files := make(map[string]*os.File, len(names))
	for key, name := range names {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			closeAll(files)
			return app.Sinks{}, nil, err
		}
		files[key] = f
	}

	sinks := app.Sinks{
		Positions:  files["positions"],
		Risk:       files["risk"],
		Executions: files["executions"],
		Streaming:  files["streaming"],
		Inquiries:  files["inquiries"],
		GUI:        files["gui"],
	}
	return sinks, func() { closeAll(files) }, nil
}

func closeAll(files map[string]*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// openSources opens the four fixed input files and returns an
// app.Sources plus a closer. A missing file is treated as an empty
// source rather than a fatal error, since not every scenario needs all
// four inputs.
func openSources(marketData, prices, trades, inquiries string) (app.Sources, func(), error) {
	var opened []*os.File
	open := func(path string) (io.Reader, error) {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
		opened = append(opened, f)
		return f, nil
	}

	md, err := open(marketData)
	if err != nil {
		return app.Sources{}, nil, err
	}
	pr, err := open(prices)
	if err != nil {
		return app.Sources{}, nil, err
	}
	tr, err := open(trades)
	if err != nil {
		return app.Sources{}, nil, err
	}
	inq, err := open(inquiries)
	if err != nil {
		return app.Sources{}, nil, err
	}

	sources := app.Sources{MarketData: md, Prices: pr, Trades: tr, Inquiries: inq}
	closer := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	return sources, closer, nil
}
