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

// Command cbordump walks one or more files (or stdin) each containing
// back-to-back CBOR items and prints a diagnostic dump of their
// contents.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/nilgrove/tinycbor/cbor"
	"github.com/nilgrove/tinycbor/internal/metrics"
)

func main() {
	metricsAddr := flag.String("metrics", "", "if set, serve Prometheus metrics on this address while dumping")
	flag.Parse()

	session := uuid.New()
	if *metricsAddr != "" {
		srv := metrics.Serve(*metricsAddr)
		defer srv.Close()
	}

	o := bufio.NewWriter(os.Stdout)
	defer o.Flush()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := dumpOne(o, arg); err != nil {
			fmt.Fprintf(os.Stderr, "cbordump[%s]: %s: %s\n", session, arg, err)
			os.Exit(1)
		}
	}
}

func dumpOne(o io.Writer, arg string) error {
	var in *os.File
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("can't open: %w", err)
		}
		defer f.Close()
		in = f
	}
	buf, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	s := cbor.NewStreamFilled(buf)
	return cbor.WalkAll(o, s)
}
