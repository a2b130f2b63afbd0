// Package scraper provides HTTP fetching and list-page extraction for
// Athens ticketing sites.
//
// The scraper downloads a listing page and hands the body to one of two
// extraction paths: the schema.org/Event article pipeline in the parser
// package, or the goquery-based card parser in this package for the
// play-template list layout shared by viva.gr and more.com. The core
// extraction never touches the network; fetching lives here.
package scraper
