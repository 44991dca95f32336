package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/samber/lo"
)

type contestantStats struct {
	disks     []float64
	wins      float64
	darkGames int
	darkWins  float64
}

// AnalyzeLogFile reads a log written by PlayGames and returns per-contestant
// statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return analyzeLog(file)
}

func analyzeLog(rd io.Reader) (string, error) {
	r := csv.NewReader(rd)

	// Record looks like:
	// gameID,dark,light,darkDisks,lightDisks,turns,passes,winner
	stats := map[string]*contestantStats{}
	get := func(name string) *contestantStats {
		if stats[name] == nil {
			stats[name] = &contestantStats{}
		}
		return stats[name]
	}
	gamesPlayed := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "gameID" {
			continue
		}
		if len(record) != 8 {
			return "", fmt.Errorf("bad record %v", record)
		}
		darkDisks, err := strconv.Atoi(record[3])
		if err != nil {
			return "", err
		}
		lightDisks, err := strconv.Atoi(record[4])
		if err != nil {
			return "", err
		}
		dark, light := get(record[1]), get(record[2])
		dark.disks = append(dark.disks, float64(darkDisks))
		light.disks = append(light.disks, float64(lightDisks))
		dark.darkGames++
		switch {
		case darkDisks > lightDisks:
			dark.wins++
			dark.darkWins++
		case darkDisks < lightDisks:
			light.wins++
		default:
			dark.wins += 0.5
			dark.darkWins += 0.5
			light.wins += 0.5
		}
		gamesPlayed++
	}

	names := lo.Keys(stats)
	sort.Strings(names)
	out := fmt.Sprintf("Games played: %d\n", gamesPlayed)
	for _, name := range names {
		s := stats[name]
		out += fmt.Sprintf("%s: wins %.1f, mean disks %.2f", name, s.wins, lo.Mean(s.disks))
		if s.darkGames > 0 {
			out += fmt.Sprintf(", as dark %.1f/%d", s.darkWins, s.darkGames)
		}
		out += "\n"
	}
	return out, nil
}
