package metrics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Gauge ...
	Gauge instrument = iota
	// Counter ...
	Counter
	// Histogram ...
	Histogram
)

var (
	// ErrInstrumentNotSupported signals the specified instrument is not yet supported.
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	// ErrInstrumentTypeMismatch signals the type of the instrument is not expected.
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	// Time spent per bootstrap phase, labelled by mode (snapshot/genesis).
	bootstrapTime *prometheus.CounterVec
	// Bootstrap outcomes per mode.
	bootstrapCounter *prometheus.CounterVec
	// Slot of the last snapshot whose claim was verified.
	snapshotSlotGauge prometheus.Gauge
)

// abstract prometheus types.
type instrument int

// combine all possible prometheus options + way to differentiate between
// regular or vector type.
type instrumentOpts struct {
	opts    prometheus.Opts
	buckets []float64
	vectors []string
}

type mi struct {
	gaugeV     *prometheus.GaugeVec
	gauge      prometheus.Gauge
	counterV   *prometheus.CounterVec
	counter    prometheus.Counter
	histogramV *prometheus.HistogramVec
	histogram  prometheus.Histogram
}

// InstrumentOption - vararg for instrument options setting.
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface,
// slice of label names.
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument.
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace.
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Buckets - specific to histogram type.
func Buckets(b []float64) InstrumentOption {
	return func(o *instrumentOpts) {
		o.buckets = b
	}
}

// AddInstrument configures and registers a new metrics instrument.
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := opt.gauge()
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := opt.counter()
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	case Histogram:
		o := opt.histogram()
		if len(opt.vectors) == 0 {
			ret.histogram = prometheus.NewHistogram(o)
			col = ret.histogram
		} else {
			ret.histogramV = prometheus.NewHistogramVec(o, opt.vectors)
			col = ret.histogramV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := prometheus.Register(col); err != nil {
		return nil, err
	}
	return &ret, nil
}

// Start enables the metrics endpoint (given config).
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	if err := setupMetrics(); err != nil {
		panic("could not set up metrics")
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}

func (i instrumentOpts) gauge() prometheus.GaugeOpts {
	return prometheus.GaugeOpts(i.opts)
}

func (i instrumentOpts) counter() prometheus.CounterOpts {
	return prometheus.CounterOpts(i.opts)
}

func (i instrumentOpts) histogram() prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Name:        i.opts.Name,
		Namespace:   i.opts.Namespace,
		Subsystem:   i.opts.Subsystem,
		ConstLabels: i.opts.ConstLabels,
		Help:        i.opts.Help,
		Buckets:     i.buckets,
	}
}

// Gauge returns a prometheus Gauge instrument.
func (m mi) Gauge() (prometheus.Gauge, error) {
	if m.gauge == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gauge, nil
}

// CounterVec returns a prometheus CounterVec instrument.
func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func setupMetrics() error {
	h, err := AddInstrument(
		Counter,
		"bootstrap_seconds_total",
		Namespace("ozone"),
		Vectors("mode", "fn"),
		Help("Time spent bootstrapping ledger state"),
	)
	if err != nil {
		return err
	}
	bt, err := h.CounterVec()
	if err != nil {
		return err
	}
	bootstrapTime = bt

	h, err = AddInstrument(
		Counter,
		"bootstrap_total",
		Namespace("ozone"),
		Vectors("mode", "outcome"),
		Help("Number of bootstrap attempts per mode and outcome"),
	)
	if err != nil {
		return err
	}
	bc, err := h.CounterVec()
	if err != nil {
		return err
	}
	bootstrapCounter = bc

	h, err = AddInstrument(
		Gauge,
		"snapshot_slot",
		Namespace("ozone"),
		Help("Slot of the last snapshot whose claim was verified"),
	)
	if err != nil {
		return err
	}
	g, err := h.Gauge()
	if err != nil {
		return err
	}
	snapshotSlotGauge = g

	return nil
}

// StartBootstrap returns a closure recording the time spent in a bootstrap
// phase, typically used as: defer metrics.StartBootstrap("snapshot", "decode")().
func StartBootstrap(mode, fn string) func() {
	if bootstrapTime == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		bootstrapTime.WithLabelValues(mode, fn).Add(time.Since(start).Seconds())
	}
}

// BootstrapAttempt counts a bootstrap attempt outcome for a mode.
func BootstrapAttempt(mode, outcome string) {
	if bootstrapCounter == nil {
		return
	}
	bootstrapCounter.WithLabelValues(mode, outcome).Inc()
}

// SetSnapshotSlot records the slot of the last verified snapshot.
func SetSnapshotSlot(slot uint64) {
	if snapshotSlotGauge == nil {
		return
	}
	snapshotSlotGauge.Set(float64(slot))
}
