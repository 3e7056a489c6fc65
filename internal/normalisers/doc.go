// Package normalisers provides text normalisation for survey content.
// The formtext subpackage sanitises catalogue titles and descriptions
// before they are sent to the Forms API.
package normalisers
