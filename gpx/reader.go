package gpx

import (
	"fmt"
	"io"

	gpxgo "github.com/tkrajina/gpxgo/gpx"

	"github.com/fernbridge/coursepointer/course"
)

// ReadItems parses r as a GPX document and flattens its tracks, routes, and
// waypoints into the ordered Item stream described by the data model: one
// TrackOrRoute (with its name and points) per track or route, tracks first,
// with one TrackSegment item per track segment (routes carry none), followed
// by one Waypoint item per document waypoint.
//
// The XML scanning itself is delegated entirely to gpxgo; this is strictly
// an adapter from its eagerly-parsed document model to the Item stream the
// course assembler expects.
func ReadItems(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading GPX input: %v", ErrIo, err)
	}

	doc, err := gpxgo.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var items []Item

	for _, trk := range doc.Tracks {
		trackItems, err := trackItems(trk)
		if err != nil {
			return nil, err
		}
		items = append(items, trackItems...)
	}

	for _, rte := range doc.Routes {
		routeItems, err := routeItems(rte)
		if err != nil {
			return nil, err
		}
		items = append(items, routeItems...)
	}

	for _, wpt := range doc.Waypoints {
		item, err := waypointItem(wpt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func trackItems(trk gpxgo.GPXTrack) ([]Item, error) {
	items := []Item{{Kind: TrackOrRoute}}
	if trk.Name != "" {
		items = append(items, Item{Kind: TrackOrRouteName, Name: trk.Name})
	}
	for _, seg := range trk.Segments {
		items = append(items, Item{Kind: TrackSegment})
		for _, pt := range seg.Points {
			p, err := geoPointOf(pt)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Kind: TrackOrRoutePoint, Point: p})
		}
	}
	return items, nil
}

func routeItems(rte gpxgo.GPXRoute) ([]Item, error) {
	items := []Item{{Kind: TrackOrRoute}}
	if rte.Name != "" {
		items = append(items, Item{Kind: TrackOrRouteName, Name: rte.Name})
	}
	for _, pt := range rte.Points {
		p, err := geoPointOf(pt)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Kind: TrackOrRoutePoint, Point: p})
	}
	return items, nil
}

func waypointItem(wpt gpxgo.GPXPoint) (Item, error) {
	p, err := geoPointOf(wpt)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Kind: Waypoint,
		Wpt: WaypointData{
			Point:   p,
			Name:    wpt.Name,
			Comment: wpt.Comment,
			Symbol:  wpt.Symbol,
			Type:    wpt.Type,
		},
	}, nil
}

func geoPointOf(pt gpxgo.GPXPoint) (course.GeoPoint, error) {
	var ele *float64
	if pt.Elevation.NotNull() {
		v := pt.Elevation.Value()
		ele = &v
	}
	p, err := course.NewGeoPoint(pt.Latitude, pt.Longitude, ele)
	if err != nil {
		return course.GeoPoint{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return p, nil
}
