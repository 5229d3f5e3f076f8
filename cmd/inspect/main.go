// Command inspect prints the resolved joint positions and record fields
// of a pose file (a single JSON pose record).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/kinematics"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <pose.json>")
		os.Exit(1)
	}
	path := os.Args[1]

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	var rec pose.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	p, err := pose.FromRecord(rec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Pose: %s\n", path)
	fmt.Printf("  root=(%.2f, %.2f) rotation=%.2f°\n", p.Root.X, p.Root.Y, p.RootRotation)

	fields := make([]string, 0, len(rec))
	for k := range rec {
		if k != "root" && k != "rootRotation" {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	for _, k := range fields {
		fmt.Printf("  %-24s %8.2f°\n", k, rec[k])
	}

	fmt.Println("Joints:")
	joints := kinematics.ResolveJoints(p)
	for pt := 0; pt < schema.PointCount; pt++ {
		v := joints[schema.Point(pt)]
		fmt.Printf("  %-14s (%8.2f, %8.2f)\n", schema.Point(pt), v.X, v.Y)
	}
}
