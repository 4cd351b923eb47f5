package types

import (
	commontypes "github.com/jasontodev/NoxusIoniaRL/common/types"
)

type WatcherMap struct {
	*commontypes.SyncMap
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		commontypes.NewSyncMap(),
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	if res, ok := (wmap.GetGeneric(id)).(*Watcher); ok {
		return res
	}

	return nil
}

func (wmap *WatcherMap) ToArray() []*Watcher {
	items := wmap.ToArrayGeneric()
	res := make([]*Watcher, 0, len(items))

	for _, item := range items {
		if watcher, ok := item.(*Watcher); ok {
			res = append(res, watcher)
		}
	}

	return res
}

type VizArenaMap struct {
	*commontypes.SyncMap
}

func NewVizArenaMap() *VizArenaMap {
	return &VizArenaMap{
		commontypes.NewSyncMap(),
	}
}

func (amap *VizArenaMap) Get(id string) *VizArena {
	if res, ok := (amap.GetGeneric(id)).(*VizArena); ok {
		return res
	}

	return nil
}

func (amap *VizArenaMap) ToArray() []*VizArena {
	items := amap.ToArrayGeneric()
	res := make([]*VizArena, 0, len(items))

	for _, item := range items {
		if arena, ok := item.(*VizArena); ok {
			res = append(res, arena)
		}
	}

	return res
}
