package influxdb

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/pkg/errors"

	"github.com/influxdata/influxdb/client/v2"
)

type Settings struct {
	Addr     string `yaml:"addr" json:"addr"`
	Database string `yaml:"database" json:"database"`
}

func (s Settings) Enabled() bool {
	return s.Addr != "" && s.Database != ""
}

// Client reports points to InfluxDB. Without settings it is a stub that
// only logs the points it is given.
type Client struct {
	isStub bool

	appName        string
	database       string
	influxdbClient client.Client
	tickerChannel  *time.Ticker
	stop           chan struct{}
	stopOnce       sync.Once
}

func createHttpClient(addr string) (client.Client, error) {
	return client.NewHTTPClient(client.HTTPConfig{
		Addr:    addr,
		Timeout: 5 * time.Second,
	})
}

func NewClient(appName string, settings Settings, interval time.Duration) (*Client, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	stubClient := &Client{
		isStub: true,

		tickerChannel: time.NewTicker(interval),
		stop:          make(chan struct{}),
		appName:       appName,
	}

	if !settings.Enabled() {
		utils.Debug("influxdb", "No client has been configured")
		return stubClient, nil
	}

	influxdbClient, err := createHttpClient(settings.Addr)
	if err != nil {
		return stubClient, errors.Wrapf(err, "could not create influxdb client for %s", settings.Addr)
	}

	utils.Debug("influxdb", "Influxdb reporting is enabled")

	return &Client{
		isStub: false,

		influxdbClient: influxdbClient,
		database:       settings.Database,
		tickerChannel:  stubClient.tickerChannel,
		stop:           stubClient.stop,
		appName:        appName,
	}, nil
}

func (c *Client) IsStub() bool {
	return c.isStub
}

func formatFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, fields[k])
	}

	return strings.Join(parts, " ")
}

func (c *Client) WriteAppMetric(name string, tags map[string]string, fields map[string]interface{}) error {
	if c.isStub {
		utils.Debug("influxdb-debug", name+" "+formatFields(fields))
		return nil
	}

	allTags := map[string]string{"app": c.appName}
	for k, v := range tags {
		allTags[k] = v
	}

	pt, err := client.NewPoint(name, allTags, fields, time.Now())
	if err != nil {
		return errors.Wrapf(err, "could not create point %s", name)
	}

	batch, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database: c.database,
	})
	if err != nil {
		return errors.Wrap(err, "could not create batch")
	}

	batch.AddPoint(pt)

	return errors.Wrap(c.influxdbClient.Write(batch), "could not write to influxdb")
}

// Loop calls fn on every tick until TearDown.
func (c *Client) Loop(fn func()) {
	go func() {
		for {
			select {
			case <-c.tickerChannel.C:
				fn()
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *Client) TearDown() {
	c.stopOnce.Do(func() {
		c.tickerChannel.Stop()
		close(c.stop)

		if c.influxdbClient != nil {
			c.influxdbClient.Close()
		}
	})
}
