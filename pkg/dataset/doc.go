// Package dataset loads the two source datasets used by tidyviz.
//
// # Datasets
//
// Both datasets are published as CSV in the TidyTuesday repository:
//
//   - bechdel: per-film Bechdel Test ratings, 1888-2021
//     (data/2021/2021-03-09/raw_bechdel.csv)
//   - postoffices: US post office locations and lifetimes, 1764-2000
//     (data/2021/2021-04-13/post_offices.csv)
//
// [Client] downloads the raw CSV over HTTPS with retry and TTL caching;
// local file paths are accepted as an offline alternative. The parsers
// resolve columns by header name, so column reordering in the source does
// not break loading.
//
// Malformed rows (missing year, unparsable rating, no coordinates) are
// dropped during parsing rather than failing the whole load. The source
// files are hand-compiled historical records and a handful of incomplete
// rows is expected.
//
// An embedded decennial census table provides state populations for the
// per-capita map shading; see [LoadCensus].
package dataset
