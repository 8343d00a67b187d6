// Package recommend assembles seat recommendations: it ties the trajectory
// synthesizer, the sun scanner, the seat resolver and the external weather
// and airport collaborators into one request-scoped computation.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"sunflight/internal/airports"
	"sunflight/internal/config"
	"sunflight/internal/route"
	"sunflight/internal/seating"
	"sunflight/internal/solar"
	"sunflight/internal/sunscan"
	"sunflight/internal/timezone"
	"sunflight/internal/types"
	"sunflight/internal/weather"
)

var (
	// ErrSameAirport rejects requests where departure and arrival are the
	// same airport.
	ErrSameAirport = errors.New("departure and arrival airports are identical")

	// ErrInvalidPreference rejects sun preferences outside sunrise/sunset.
	ErrInvalidPreference = errors.New("sun preference must be \"sunrise\" or \"sunset\"")

	// ErrBadDeparture rejects malformed departure dates or times.
	ErrBadDeparture = errors.New("invalid departure date or time")
)

// Service computes seat recommendations.
type Service interface {
	Recommend(ctx context.Context, req Request) (*Response, error)
}

type recommendService struct {
	synthesizer     *route.Synthesizer
	scanner         *sunscan.Scanner
	directory       *airports.Directory
	weatherService  weather.Service
	timezoneService timezone.Service // optional, nil falls back to airport records only
	cfg             *config.Config
	logger          *slog.Logger
}

// NewService creates the recommendation service. The timezone service may be
// nil; airport records then provide the only local-time information.
func NewService(
	directory *airports.Directory,
	weatherService weather.Service,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &recommendService{
		synthesizer:     route.NewSynthesizer(cfg.Flight),
		scanner:         sunscan.NewScanner(cfg.Scoring),
		directory:       directory,
		weatherService:  weatherService,
		timezoneService: timezoneService,
		cfg:             cfg,
		logger:          logger.With("component", "recommend-service"),
	}
}

// Recommend computes the full recommendation for one flight request.
func (s *recommendService) Recommend(ctx context.Context, req Request) (*Response, error) {
	if !req.SunPreference.Valid() {
		return nil, ErrInvalidPreference
	}

	departure, err := s.directory.Lookup(req.DepartureAirport)
	if err != nil {
		return nil, err
	}
	arrival, err := s.directory.Lookup(req.ArrivalAirport)
	if err != nil {
		return nil, err
	}
	if departure.Code == arrival.Code {
		return nil, ErrSameAirport
	}

	departureUTC, err := s.localDepartureToUTC(departure, req.DepartureDate, req.DepartureTime)
	if err != nil {
		return nil, err
	}

	depPoint := types.NewGeoPoint(departure.Latitude, departure.Longitude)
	arrPoint := types.NewGeoPoint(arrival.Latitude, arrival.Longitude)

	trajectory, err := s.synthesizer.Synthesize(depPoint, arrPoint, s.cfg.Flight.RouteSampleCount)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize trajectory: %w", err)
	}

	// The event scan and the best-moment scan are independent passes over
	// the trajectory; run them in parallel.
	var (
		events  []sunscan.SunEvent
		bestIdx int
		bestSun solar.Position
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		events = s.scanner.DetectEvents(trajectory, departureUTC)
		return nil
	})
	g.Go(func() error {
		var scanErr error
		bestIdx, bestSun, scanErr = s.scanner.BestMoment(trajectory, departureUTC, req.SunPreference)
		return scanErr
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to scan trajectory: %w", err)
	}

	// Visibility of the preferred event means an actual horizon crossing of
	// that kind somewhere en route; a sun that is merely up does not count.
	preferredVisible := false
	alternateVisible := false
	for _, event := range events {
		if string(event.Kind) == string(req.SunPreference) {
			preferredVisible = true
		} else {
			alternateVisible = true
		}
	}

	best := trajectory[bestIdx]
	bestTime := departureUTC.Add(time.Duration(best.ElapsedHours * float64(time.Hour)))

	// Weather is the only external I/O; bound it so a slow provider cannot
	// stall the request. Evaluate absorbs the timeout into the fallback.
	wctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Weather.TimeoutSeconds)*time.Second)
	defer cancel()
	conditions := s.weatherService.Evaluate(wctx, best.Position.Latitude, best.Position.Longitude, bestTime)

	distanceKm := route.Haversine(depPoint, arrPoint)
	aircraft := seating.GuessAircraft(req.Airline, distanceKm)

	seat := seating.Resolve(trajectory, bestIdx, bestSun, req.SunPreference, aircraft)
	direction := route.CompassName(route.BearingAt(trajectory, bestIdx))

	quality := geometricQuality(bestSun.AltitudeDeg) * conditions.ViewingScore / 100
	quality = math.Max(0, math.Min(100, quality))

	durationHours := trajectory[len(trajectory)-1].ElapsedHours

	s.logger.Debug("recommendation computed",
		"departure", departure.Code,
		"arrival", arrival.Code,
		"preference", req.SunPreference,
		"best_index", bestIdx,
		"sun_altitude", bestSun.AltitudeDeg,
		"quality", quality,
	)

	return &Response{
		DepartureAirport:    departure,
		ArrivalAirport:      arrival,
		DepartureTime:       departureUTC,
		ArrivalTime:         departureUTC.Add(time.Duration(durationHours * float64(time.Hour))),
		FlightDurationHours: durationHours,
		AircraftModel:       aircraft,
		Recommendation: Recommendation{
			SeatCode:        seat.Code,
			SeatSide:        seat.Side,
			Row:             seat.Row,
			BestTime:        bestTime,
			SunEvent:        req.SunPreference,
			EventVisible:    preferredVisible,
			QualityScore:    quality,
			FlightDirection: direction,
			Weather:         conditions,
			Notes:           s.composeNotes(req.SunPreference, preferredVisible, alternateVisible, events, bestTime, seat, conditions),
		},
		SunEvents:    events,
		RoutePreview: trajectory,
	}, nil
}

// localDepartureToUTC combines the local departure date and time using the
// airport's timezone. A missing or unknown record timezone is resolved from
// the airport coordinates; failing that the time is treated as UTC.
func (s *recommendService) localDepartureToUTC(airport airports.Airport, date, clock string) (time.Time, error) {
	tzName := airport.Timezone
	if tzName == "" && s.timezoneService != nil {
		resolved, err := s.timezoneService.GetTimezone(airport.Latitude, airport.Longitude)
		if err == nil {
			tzName = resolved
		}
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		s.logger.Warn("unknown airport timezone, treating departure as UTC",
			"airport", airport.Code,
			"timezone", tzName,
		)
		loc = time.UTC
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrBadDeparture, err)
	}
	return t.UTC(), nil
}

// geometricQuality rescales the sun's altitude at the selected moment to a
// 0-100 base score before the weather multiplier. Distinct from the scan
// scoring: this one only rates the final pick.
func geometricQuality(altitudeDeg float64) float64 {
	switch {
	case altitudeDeg >= 2 && altitudeDeg <= 10:
		return 90 + (1-math.Abs(altitudeDeg-5)/5)*10
	case altitudeDeg >= 0 && altitudeDeg < 2:
		return 80 + altitudeDeg*5
	default:
		return math.Max(0, 80-(altitudeDeg-10)*4)
	}
}

// composeNotes builds the human-readable summary of the recommendation.
func (s *recommendService) composeNotes(
	preference types.SunPreference,
	preferredVisible, alternateVisible bool,
	events []sunscan.SunEvent,
	bestTime time.Time,
	seat seating.Assignment,
	conditions *weather.Conditions,
) []string {
	var notes []string

	if !preferredVisible {
		notes = append(notes, fmt.Sprintf("No %s is visible during this flight.", preference))
		if alternateVisible {
			alternate := types.PreferSunrise
			if preference == types.PreferSunrise {
				alternate = types.PreferSunset
			}
			for _, event := range events {
				if string(event.Kind) == string(alternate) {
					notes = append(notes, fmt.Sprintf("A %s occurs at %s instead.", alternate, event.Instant.UTC().Format("15:04 MST")))
					break
				}
			}
		}
		return notes
	}

	notes = append(notes, fmt.Sprintf("Best %s view around %s from the %s side (seat %s).",
		preference, bestTime.UTC().Format("15:04 MST"), seat.Side, seat.Code))

	if conditions.FromFallback && conditions.ViewingScore < 60 {
		notes = append(notes, fmt.Sprintf("Forecast unavailable; the seasonal estimate suggests %s viewing conditions.", conditions.QualityDescription))
	} else if !conditions.FromFallback && conditions.ViewingScore < 60 {
		notes = append(notes, fmt.Sprintf("Weather may hamper the view: %s.", conditions.Description))
	}

	return notes
}
