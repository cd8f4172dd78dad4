package geo

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"
)

// RegionIndex maps coordinates to region names using Natural Earth map-unit
// polygons keyed by Wikidata QID.
type RegionIndex struct {
	regions []namedShape
}

type namedShape struct {
	name  string
	shape orb.Geometry
}

// RegionConfig names the three files an index is built from.
type RegionConfig struct {
	RegionQIDsPath  string // TSV: Region \t QID
	GeometriesPath  string // GeoJSON feature collection with WIKIDATAID properties
	AggregationPath string // TSV: Aggregation \t From \t QID To \t QID From
}

// LoadRegions builds a coordinate-to-region index. Aggregated regions (e.g.
// disputed territories) are folded into their canonical region's name;
// geometries whose QID is unknown are skipped.
func LoadRegions(cfg RegionConfig) (*RegionIndex, error) {
	qidToRegion, err := readRegionQIDs(cfg.RegionQIDsPath)
	if err != nil {
		return nil, err
	}

	aggregation, err := readAggregation(cfg.AggregationPath)
	if err != nil {
		return nil, err
	}
	for from, to := range aggregation {
		if name, ok := qidToRegion[to]; ok {
			qidToRegion[from] = name
		} else {
			logrus.Warnf("skipping aggregation for %s to unknown region %s", from, to)
		}
	}

	raw, err := os.ReadFile(filepath.Clean(cfg.GeometriesPath))
	if err != nil {
		return nil, fmt.Errorf("read region geometries: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse region geometries: %w", err)
	}

	idx := &RegionIndex{}
	skipped := 0
	for _, feature := range fc.Features {
		qid, _ := feature.Properties["WIKIDATAID"].(string)
		name, ok := qidToRegion[qid]
		if !ok {
			skipped++
			continue
		}
		idx.regions = append(idx.regions, namedShape{name: name, shape: feature.Geometry})
	}
	logrus.Infof("loaded %d region geometries, skipped %d", len(idx.regions), skipped)
	return idx, nil
}

// CoordToCountry returns the name of the first region containing the point,
// or "" when no region does.
func (idx *RegionIndex) CoordToCountry(lon, lat float64) string {
	pt := orb.Point{lon, lat}
	for _, region := range idx.regions {
		if geometryContains(region.shape, pt) {
			return region.name
		}
	}
	return ""
}

func geometryContains(g orb.Geometry, pt orb.Point) bool {
	switch shape := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(shape, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(shape, pt)
	default:
		return false
	}
}

func readRegionQIDs(path string) (map[string]string, error) {
	rows, err := readTSV(path)
	if err != nil {
		return nil, fmt.Errorf("read region qids: %w", err)
	}
	if len(rows) == 0 || !equalFields(rows[0], []string{"Region", "QID"}) {
		return nil, fmt.Errorf("unexpected region qid header")
	}
	out := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 2 {
			logrus.Warnf("invalid region qid line: %v", row)
			continue
		}
		out[row[1]] = row[0]
	}
	return out, nil
}

func readAggregation(path string) (map[string]string, error) {
	rows, err := readTSV(path)
	if err != nil {
		return nil, fmt.Errorf("read aggregation: %w", err)
	}
	if len(rows) == 0 || !equalFields(rows[0], []string{"Aggregation", "From", "QID To", "QID From"}) {
		return nil, fmt.Errorf("unexpected aggregation header")
	}
	out := make(map[string]string)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			logrus.Warnf("invalid aggregation line: %v", row)
			continue
		}
		if row[3] != "" {
			out[row[3]] = row[2]
		}
	}
	return out, nil
}

func readTSV(path string) ([][]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}
