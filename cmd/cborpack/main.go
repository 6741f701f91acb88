// Copyright (C) 2026 tinycbor contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command cborpack concatenates one or more caller-produced CBOR item
// buffers into a single Stream, appends a SipHash digest trailer, and
// optionally compresses the result. The -serve flag exposes a
// Prometheus /metrics endpoint while it works.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nilgrove/tinycbor/cbor"
	"github.com/nilgrove/tinycbor/internal/archive"
	"github.com/nilgrove/tinycbor/internal/config"
	"github.com/nilgrove/tinycbor/internal/digest"
	"github.com/nilgrove/tinycbor/internal/metrics"
)

// Fixed SipHash key for the trailer. A real deployment would derive
// this per-archive; cborpack is a diagnostic tool, not a security
// boundary, so a fixed key is enough to catch accidental corruption.
const (
	digestKey0 uint64 = 0x6370616b74696e79
	digestKey1 uint64 = 0x636f727472616365
)

func main() {
	out := flag.String("o", "-", "output file, or - for stdout")
	compress := flag.Bool("z", false, "zstd-compress the packed buffer")
	configPath := flag.String("config", "", "optional YAML config file")
	serveAddr := flag.String("serve", "", "if set, serve Prometheus metrics on this address")
	flag.Parse()

	session := uuid.New()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cborpack[%s]: %s\n", session, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *serveAddr != "" {
		srv := metrics.Serve(*serveAddr)
		defer srv.Close()
	}

	if err := run(cfg, *out, *compress, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "cborpack[%s]: %s\n", session, err)
		os.Exit(1)
	}

	if *serveAddr != "" {
		// keep the metrics endpoint alive briefly so a scrape right
		// after a short-lived pack operation can still succeed.
		time.Sleep(200 * time.Millisecond)
	}
}

func run(cfg config.Config, out string, compress bool, inputs []string) error {
	total := 0
	items := make([][]byte, 0, len(inputs))
	for _, path := range inputs {
		item, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		items = append(items, item)
		total += len(item)
	}

	capacity := cfg.Capacity
	if total > capacity {
		capacity = total
	}
	s := cbor.NewStream(capacity)
	for i, item := range items {
		if _, err := s.AppendRaw(item); err != nil {
			return fmt.Errorf("append %s: %w", inputs[i], err)
		}
		metrics.BuffersPacked.Inc()
	}

	payload := s.Bytes()
	sum := digest.Sum(payload, digestKey0, digestKey1)

	var trailer [8]byte
	binary.BigEndian.PutUint64(trailer[:], sum)

	final := append(append([]byte(nil), payload...), trailer[:]...)
	if compress {
		final = archive.Compress(nil, final)
	}
	metrics.AddBytes(len(final))

	w, closeFn, err := openOutput(out)
	if err != nil {
		return err
	}
	defer closeFn()
	_, err = w.Write(final)
	return err
}

func openOutput(path string) (*os.File, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}
