// Package ingest imports directory site data into the entity store and
// backfills embedding vectors through a bounded worker pool.
package ingest
