package influxdb_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/common/influxdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	counter.Add(1)

	assert.Equal(t, 1, counter.GetAndReset())
	assert.Equal(t, 0, counter.GetAndReset())
}

func TestConcurrentAdd(t *testing.T) {
	counter := influxdb.NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				counter.Add(1)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 800, counter.Get())
}

func TestStubClient(t *testing.T) {
	client, err := influxdb.NewClient("arena-trainer", influxdb.Settings{}, time.Millisecond)
	require.NoError(t, err)
	defer client.TearDown()

	assert.True(t, client.IsStub())
	assert.NoError(t, client.WriteAppMetric("episode", nil, map[string]interface{}{"ticks": 10}))

	ticked := make(chan struct{}, 1)
	client.Loop(func() {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("loop never ticked")
	}

	// TearDown twice is harmless
	client.TearDown()
}
