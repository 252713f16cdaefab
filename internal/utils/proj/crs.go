package proj

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/airbusgeo/godal"
)

// CRSFromUserInput initialize a crs from epsg, proj4 or Wkt format
// Return the SRID if known
func CRSFromUserInput(input string) (*godal.SpatialRef, int, error) {
	if epsg, err := strconv.Atoi(input); err == nil {
		crs, err := CRSFromEPSG(epsg)
		return crs, epsg, err
	}
	if strings.HasPrefix(strings.ToLower(input), "epsg:") {
		epsg, err := strconv.Atoi(input[5:])
		if err != nil {
			return nil, 0, fmt.Errorf("CRSFromUserInput: %w", err)
		}
		crs, err := CRSFromEPSG(epsg)
		return crs, epsg, err
	}
	var crs *godal.SpatialRef
	var err error
	if strings.HasPrefix(input, "+") {
		crs, err = godal.NewSpatialRefFromProj4(input)
	} else {
		crs, err = godal.NewSpatialRefFromWKT(input)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("CRSFromUserInput: %w", err)
	}
	runtime.SetFinalizer(crs, func(crs *godal.SpatialRef) { crs.Close() })
	return crs, Srid(crs), nil
}

var crsEPSG map[int]*godal.SpatialRef = map[int]*godal.SpatialRef{}
var crsEPSGLock sync.Mutex

// CRSFromEPSG initialize a crs from epsg (only once per epsg)
// DO NOT release the crs (it is kept for further uses)
func CRSFromEPSG(epsg int) (*godal.SpatialRef, error) {
	crsEPSGLock.Lock()
	defer crsEPSGLock.Unlock()

	if crs, ok := crsEPSG[epsg]; ok && crs != nil {
		return crs, nil
	}

	crs, err := godal.NewSpatialRefFromEPSG(epsg)
	if err != nil {
		return nil, fmt.Errorf("CRSFromEPSG: %w", err)
	}
	runtime.SetFinalizer(crs, func(crs *godal.SpatialRef) { crs.Close() })
	crsEPSG[epsg] = crs
	return crs, nil
}

// Srid returns the SRID from the crs or 0 if not found
// Warning : this function is not reliable...
func Srid(crs *godal.SpatialRef) int {
	if crs == nil {
		return 0
	}
	entities := []string{"PROJCS", "PROJCS", "LOCAL_CS", "GEOGCS"}
	for i, entity := range entities {
		if crs.AuthorityName(entity) == "EPSG" {
			if res, err := strconv.Atoi(crs.AuthorityCode(entity)); err == nil {
				return res
			}
		}
		if i == 0 {
			crs.AutoIdentifyEPSG()
		}
	}
	return 0
}
