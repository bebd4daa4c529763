// Package inmemdb provides in-memory academic repositories for tests and dev
// mode.
package inmemdb

import (
	"sync"

	"github.com/somohq/somo/core/academic"
)

type DB struct {
	mutex sync.RWMutex

	academicYears map[string]*academic.AcademicYear
	programs      map[string]*academic.Program
	universities  map[string]*academic.University
	faculties     map[string]*academic.Faculty
	courses       map[string]*academic.Course
}

func Open() (*DB, error) {
	db := &DB{
		academicYears: make(map[string]*academic.AcademicYear),
		programs:      make(map[string]*academic.Program),
		universities:  make(map[string]*academic.University),
		faculties:     make(map[string]*academic.Faculty),
		courses:       make(map[string]*academic.Course),
	}
	return db, nil
}
