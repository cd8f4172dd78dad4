package geo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// coordsHeader is the required first line of the geocoded domain table.
var coordsHeader = []string{"domain", "lat", "lon"}

// RebuildCountries resolves every geocoded domain against the region index
// and writes the domain location table consumed by NewProvider. Domains whose
// coordinates fall outside all regions are dropped. Returns the number of
// rows written.
func RebuildCountries(idx *RegionIndex, coordsPath, outPath string) (int, error) {
	rows, err := readTSV(coordsPath)
	if err != nil {
		return 0, fmt.Errorf("read coordinates: %w", err)
	}
	if len(rows) == 0 || !equalFields(rows[0], coordsHeader) {
		return 0, fmt.Errorf("unexpected coordinates header")
	}

	out, err := os.Create(filepath.Clean(outPath))
	if err != nil {
		return 0, fmt.Errorf("create country table: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "domain\tlat\tlon\tcountry")

	written := 0
	unresolved := 0
	for _, row := range rows[1:] {
		if len(row) != len(coordsHeader) {
			logrus.Warnf("invalid coordinates line: %v", row)
			continue
		}
		lat, latErr := strconv.ParseFloat(row[1], 64)
		lon, lonErr := strconv.ParseFloat(row[2], 64)
		if latErr != nil || lonErr != nil {
			logrus.Warnf("invalid coordinates for %s: %v", row[0], row[1:])
			continue
		}
		name := idx.CoordToCountry(lon, lat)
		if name == "" {
			unresolved++
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], name)
		written++
	}
	if err := w.Flush(); err != nil {
		return written, fmt.Errorf("write country table: %w", err)
	}
	logrus.Infof("rebuilt %d domain locations, %d unresolved", written, unresolved)
	return written, nil
}
