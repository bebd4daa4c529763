package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/somohq/somo/core/academic"
)

// seed loads a small demo data set so a fresh install has something to show.
// It refuses to run against a non-empty database.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	if _, count, err := cli.svc.QueryUniversities(ctx, academic.UniversityFilter{}); err != nil {
		return errors.Wrap(err, "checking for existing data")
	} else if count > 0 {
		logger.Println("database is not empty; skipping seed")
		return nil
	}

	year := time.Now().UTC().Year()
	years := []academic.NewAcademicYear{
		{
			Name:      fmt.Sprintf("%d/%d", year-1, year),
			StartDate: time.Date(year-1, time.September, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:      fmt.Sprintf("%d/%d", year, year+1),
			StartDate: time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(year+1, time.June, 30, 0, 0, 0, 0, time.UTC),
			IsCurrent: true,
		},
	}
	for _, ny := range years {
		if _, err := cli.svc.CreateAcademicYear(ctx, ny); err != nil {
			return errors.Wrapf(err, "seeding academic year %q", ny.Name)
		}
	}

	programs := []academic.NewProgram{
		{Name: "Computer Science", Degree: "BSc"},
		{Name: "Computer Science", Degree: "MSc"},
		{Name: "Civil Engineering", Degree: "BEng"},
		{Name: "Medicine", Degree: "MD"},
	}
	for _, np := range programs {
		if _, err := cli.svc.CreateProgram(ctx, np); err != nil {
			return errors.Wrapf(err, "seeding program %q", np.Name)
		}
	}

	unis := []struct {
		uni       academic.NewUniversity
		faculties []academic.NewFaculty
	}{
		{
			uni: academic.NewUniversity{Name: "University of Kinshasa", Code: "UNIKIN", Website: "https://www.unikin.ac.cd"},
			faculties: []academic.NewFaculty{
				{Name: "Polytechnic Faculty", Code: "POLY"},
				{Name: "Faculty of Medicine", Code: "MED"},
			},
		},
		{
			uni: academic.NewUniversity{Name: "University of Lubumbashi", Code: "UNILU"},
			faculties: []academic.NewFaculty{
				{Name: "Faculty of Sciences", Code: "SCI"},
			},
		},
	}

	for _, entry := range unis {
		uni, err := cli.svc.CreateUniversity(ctx, entry.uni)
		if err != nil {
			return errors.Wrapf(err, "seeding university %q", entry.uni.Code)
		}
		for _, nf := range entry.faculties {
			nf.UniversityID = uni.ID
			fac, err := cli.svc.CreateFaculty(ctx, nf)
			if err != nil {
				return errors.Wrapf(err, "seeding faculty %q", nf.Code)
			}
			courses := []academic.NewCourse{
				{FacultyID: fac.ID, Name: "Introduction to " + fac.Name, Code: fac.Code + "-101", Credits: 6},
				{FacultyID: fac.ID, Name: "Research Methods", Code: fac.Code + "-201", Credits: 4},
			}
			for _, nc := range courses {
				if _, err = cli.svc.CreateCourse(ctx, nc); err != nil {
					return errors.Wrapf(err, "seeding course %q", nc.Code)
				}
			}
		}
	}

	logger.Println("seed complete")
	return nil
}
